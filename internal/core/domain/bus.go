package domain

import "time"

// Bus is one trip returned by the search endpoint. Instances are
// immutable once received; display-only enrichment lives in BusResult
// values built by the search service, never on the Bus itself.
type Bus struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Fare       float64 `json:"fare"`
	FromCity   string  `json:"from_city"`
	ToCity     string  `json:"to_city"`
	DepartTime string  `json:"depart_time"`
	ArriveTime string  `json:"arrive_time"`
}

var departFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"15:04",
}

// ParseDepartTime parses the service's departure timestamp. The remote
// service is not strict about the format, so several layouts are tried;
// an unparseable value sorts as the zero time.
func ParseDepartTime(s string) time.Time {
	for _, layout := range departFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
