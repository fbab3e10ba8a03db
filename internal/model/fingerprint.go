package model

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Fingerprint derives a stable URN identifier for a model: a name-based UUID
// over its canonical JSON form. The same model always fingerprints to the
// same URN, so emitted artifacts can be traced back to their source.
func Fingerprint(m *DataModel) (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, raw).String(), nil
}
