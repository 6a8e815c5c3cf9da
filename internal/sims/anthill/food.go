package anthill

import (
	"fmt"
	"strconv"
	"strings"
)

// Food is an inexhaustible axis-aligned rectangle in field coordinates.
type Food struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies strictly inside the rectangle. Points
// on an edge are outside.
func (f Food) Contains(x, y float64) bool {
	return f.X < x && x < f.X+f.W && f.Y < y && y < f.Y+f.H
}

func (f Food) String() string {
	return strings.Join([]string{
		strconv.FormatFloat(f.X, 'g', -1, 64),
		strconv.FormatFloat(f.Y, 'g', -1, 64),
		strconv.FormatFloat(f.W, 'g', -1, 64),
		strconv.FormatFloat(f.H, 'g', -1, 64),
	}, ",")
}

// ParseFood parses "x,y,w,h;x,y,w,h". An empty string yields no food.
func ParseFood(s string) ([]Food, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []Food
	for i, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: entry %d %q needs x,y,w,h", ErrInvalidFood, i, part)
		}
		var vals [4]float64
		for j, raw := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d %q: %v", ErrInvalidFood, i, part, err)
			}
			vals[j] = v
		}
		out = append(out, Food{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]})
	}
	return out, nil
}

// FormatFood is the inverse of ParseFood.
func FormatFood(food []Food) string {
	parts := make([]string, len(food))
	for i, f := range food {
		parts[i] = f.String()
	}
	return strings.Join(parts, ";")
}
