package clock

import (
	"sync"
	"time"
)

// Clock cung cấp thời điểm hiện tại cho domain.
// Entity không gọi time.Now() trực tiếp, nhận Clock từ caller.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System trả về clock thật, UTC
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Stepping trả về start, rồi mỗi lần gọi Now() tăng thêm step.
// Dùng trong test để updatedAt luôn tăng ngặt.
type Stepping struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

func NewStepping(start time.Time, step time.Duration) *Stepping {
	return &Stepping{current: start, step: step}
}

func (s *Stepping) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.current
	s.current = s.current.Add(s.step)
	return now
}

// Fixed luôn trả về cùng một thời điểm
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
