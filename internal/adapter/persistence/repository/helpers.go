package repository

import "os"

// getenvDefault resolves the table-name overrides (CLAIMS_TABLE,
// CLAIM_DOCUMENTS_TABLE, INVESTIGATORS_TABLE) with local-friendly defaults.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
