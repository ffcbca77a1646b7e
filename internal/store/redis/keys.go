package redis

import "fmt"

const (
	// KeyPrefixHost is the prefix for host keys
	KeyPrefixHost = "hostdec:host:"
	// KeyAllHosts is the key for the set of all host IDs
	KeyAllHosts = "hostdec:hosts:all"

	// KeyPrefixAnomaly is the prefix for anomaly keys
	KeyPrefixAnomaly = "hostdec:anomaly:"
	// KeyAllAnomalies is the key for the set of all anomaly IDs
	KeyAllAnomalies = "hostdec:anomalies:all"
)

// HostKey returns the Redis key for a host by ID
func HostKey(id string) string {
	return KeyPrefixHost + id
}

// AllHostsKey returns the key for the set of all host IDs
func AllHostsKey() string {
	return KeyAllHosts
}

// AnomalyKey returns the Redis key for an anomaly by ID
func AnomalyKey(id string) string {
	return KeyPrefixAnomaly + id
}

// AllAnomaliesKey returns the key for the set of all anomaly IDs
func AllAnomaliesKey() string {
	return KeyAllAnomalies
}

// ExtractHostID extracts the host ID from a Redis key
func ExtractHostID(key string) (string, error) {
	if len(key) <= len(KeyPrefixHost) {
		return "", fmt.Errorf("invalid host key: %s", key)
	}
	return key[len(KeyPrefixHost):], nil
}
