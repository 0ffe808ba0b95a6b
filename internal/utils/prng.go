package utils

import (
	"math/rand"
	"time"
)

// Random — минимальный набор случайных операций, нужный симуляции.
// Тесты подменяют его, чтобы зафиксировать броски.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange возвращает число в [lo, hi] включительно.
func IntRange(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatRange возвращает число в [lo, hi).
func FloatRange(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance — бросок с вероятностью p.
func Chance(r Random, p float64) bool {
	return r.Float64() < p
}

// Sample выбирает k различных индексов из [0, n) в случайном порядке
// (частичная тасовка Фишера-Йейтса).
func Sample(r Random, n, k int) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
