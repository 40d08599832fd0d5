package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// PreviousWindow devolve a janela de mesmo tamanho imediatamente anterior a [since, until]
func PreviousWindow(since, until time.Time) (time.Time, time.Time) {
	days := int(until.Sub(since).Hours()/24) + 1
	prevUntil := since.AddDate(0, 0, -1)
	prevSince := prevUntil.AddDate(0, 0, -(days - 1))
	return prevSince, prevUntil
}
