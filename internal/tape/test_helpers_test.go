package tape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestStore opens a private in-memory tape closed at test end.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}
