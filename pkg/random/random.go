package random

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source источник случайных чисел. IntN возвращает число в [0, n)
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

// Crypto источник на crypto/rand, используется в проде
func Crypto() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand не должен падать, но игру из-за этого не роняем
		return mrand.IntN(n)
	}
	return int(v.Int64())
}

type lockedSource struct {
	mtx sync.Mutex
	src Source
}

// Locked делает источник безопасным для конкурентных вызовов. Crypto уже безопасен
func Locked(src Source) Source {
	switch src.(type) {
	case cryptoSource, *lockedSource:
		return src
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.src.IntN(n)
}

// Seeded детерминированный источник для симуляций и тестов
func Seeded(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Scripted отдает заранее заданные значения по кругу (значение берется по модулю n)
type Scripted struct {
	Values []int
	pos    int
}

func (s *Scripted) IntN(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
