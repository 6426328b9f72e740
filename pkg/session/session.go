package session

// Value retrieves a session value as T.
// ok is false when the key is absent or holds a value of another type.
func Value[T any](m *Manager, key string) (T, bool, error) {
	var zero T
	val, err := m.Get(key)
	if err != nil || val == nil {
		return zero, false, err
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false, nil
	}
	return typed, true, nil
}

// String retrieves a string session value
func String(m *Manager, key string) (string, bool, error) {
	return Value[string](m, key)
}

// Bool retrieves a bool session value
func Bool(m *Manager, key string) (bool, bool, error) {
	return Value[bool](m, key)
}

// Int retrieves an int session value, accepting the numeric types
// decoded values usually arrive as.
func Int(m *Manager, key string) (int, bool, error) {
	val, err := m.Get(key)
	if err != nil || val == nil {
		return 0, false, err
	}
	switch v := val.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case int32:
		return int(v), true, nil
	case float64:
		return int(v), true, nil
	default:
		return 0, false, nil
	}
}
