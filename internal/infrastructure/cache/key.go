package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
)

// Key implements ports.CacheRepository. Keys follow
// "{version}-{category}:{md5(canonicalJSON(params))}"; two structurally
// equal parameter sets always hash identically regardless of field order.
func (s *Store) Key(category string, params any) string {
	sum := md5.Sum(canonicalJSON(params))
	return fmt.Sprintf("%s-%s:%x", s.keyVersion, category, sum)
}

// canonicalJSON serializes params with object keys sorted. Round-tripping
// through a generic value forces encoding/json's sorted map ordering onto
// struct inputs too.
func canonicalJSON(params any) []byte {
	raw, err := json.Marshal(params)
	if err != nil {
		return []byte(fmt.Sprintf("%+v", params))
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return raw
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return raw
	}
	return canonical
}
