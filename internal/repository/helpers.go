package repository

// nullableStringToValue converts a possibly-empty string to SQL NULL when empty.
func nullableStringToValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
