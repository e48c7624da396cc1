package inventory

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/nmasdoufi/hudubridge/pkg/action1"
)

// ErrMissingName reports a record without the mandatory name field. Callers
// log a warning and skip the record rather than aborting the batch.
var ErrMissingName = errors.New("endpoint record has no name")

// Normalize maps a raw Action1 record to an Endpoint. A blank manufacturer
// becomes Brand "Other".
func Normalize(rec action1.EndpointRecord) (Endpoint, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return Endpoint{}, ErrMissingName
	}
	brand := strings.TrimSpace(rec.Manufacturer)
	if brand == "" {
		brand = "Other"
	}
	return Endpoint{
		Name:   name,
		Brand:  brand,
		Disk:   strings.TrimSpace(rec.Disk),
		Serial: strings.TrimSpace(rec.Serial),
		RAM:    strings.TrimSpace(rec.RAM),
		OS:     strings.TrimSpace(rec.OS),
	}, nil
}
