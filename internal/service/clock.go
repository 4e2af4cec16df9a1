package service

import (
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/service/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() ports.Clock { return systemClock{} }
