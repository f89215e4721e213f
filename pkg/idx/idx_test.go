package idx_test

import (
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewIsUniqueUnderSameTimestamp(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	seen := make(map[idx.ID]struct{}, 100)
	for range 100 {
		id := idx.NewAt(at)
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}
	}
}

func TestParseRejectsForeignIdentifiers(t *testing.T) {
	for _, s := range []string{"", "   ", "4b1f6f3e-6f0e-4a57-9d0e-5c4f0c9b9a11", "not-a-ulid"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
	}
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)

	// uuid-shaped identifiers carry no timestamp
	require.True(t, idx.ID("4b1f6f3e-6f0e-4a57-9d0e-5c4f0c9b9a11").Time().IsZero())
}
