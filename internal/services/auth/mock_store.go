package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[string]string
	err    error
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

// FailWith makes every later call return err, simulating a locked or
// unavailable keychain.
func (m *MockStore) FailWith(err error) {
	m.err = err
}

func (m *MockStore) SetToken(provider string, token string) error {
	if m.err != nil {
		return m.err
	}
	m.tokens[NormalizeProvider(provider)] = token
	return nil
}

func (m *MockStore) GetToken(provider string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	token, ok := m.tokens[NormalizeProvider(provider)]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(provider string) error {
	if m.err != nil {
		return m.err
	}
	key := NormalizeProvider(provider)
	if _, ok := m.tokens[key]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, key)
	return nil
}
