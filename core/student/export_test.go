package student

import "github.com/MohdShoeb1/institute-management-backend/core"

func (svc *Service) SetNowFunc(f core.NowFunc) { svc.nowFunc = f }
