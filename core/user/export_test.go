package user

import "github.com/MohdShoeb1/institute-management-backend/core"

func (svc *Service) SetNowFunc(f core.NowFunc) { svc.nowFunc = f }

// CountHashComparisons counts bcrypt comparisons until the returned func is called.
func CountHashComparisons() (count *int, restore func()) {
	orig := compareHashAndPassword
	count = new(int)
	compareHashAndPassword = func(hash, pwd []byte) error {
		*count++
		return orig(hash, pwd)
	}
	return count, func() { compareHashAndPassword = orig }
}
