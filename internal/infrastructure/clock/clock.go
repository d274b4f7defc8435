package clock

import (
	"fmt"
	"time"
)

// Layout formato de fecha y hora de la plataforma (ej. 3/7/2025 4:05:09 pm).
const Layout = "1/2/2006 3:04:05 pm"

// Clock genera sellos de tiempo en la zona horaria de la compañía.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New construye el reloj para la zona IANA indicada.
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("clock: zona horaria %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// WithNow reemplaza la fuente de tiempo; útil en tests.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	c.now = now
	return c
}

// Now hora actual en la zona de la compañía.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Timestamp hora actual formateada con Layout.
func (c *Clock) Timestamp() string {
	return c.Now().Format(Layout)
}
