package domain_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainHasher is a reversible stand-in for bcrypt so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Compare(plain, hash string) bool  { return hash == "hashed:"+plain }

func TestEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		a, err := domain.NewEmail("A@B.com")
		require.NoError(t, err)
		b, err := domain.NewEmail(" a@b.com ")
		require.NoError(t, err)

		assert.True(t, a.Equals(b))
		assert.Equal(t, "a@b.com", a.String())
	})

	invalid := []string{"", "   ", "plain", "a@b", "@b.com", "a b@c.com", "a@@b.com"}
	for _, raw := range invalid {
		t.Run("rejects "+fmt.Sprintf("%q", raw), func(t *testing.T) {
			_, err := domain.NewEmail(raw)
			assert.True(t, apperror.Is(err, apperror.KindValidation))
		})
	}
}

func TestJobTitleBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, 2, 101} {
		_, err := domain.NewJobTitle(strings.Repeat("a", n))
		assert.Error(t, err, "length %d should fail", n)
	}
	for _, n := range []int{3, 100} {
		title, err := domain.NewJobTitle(strings.Repeat("a", n))
		assert.NoError(t, err, "length %d should pass", n)
		assert.Len(t, title.String(), n)
	}

	title, err := domain.NewJobTitle("   Go Engineer  ")
	require.NoError(t, err)
	assert.Equal(t, "Go Engineer", title.String())
}

func TestPasswordHash(t *testing.T) {
	hasher := plainHasher{}

	t.Run("hashes valid plaintext and compares", func(t *testing.T) {
		p, err := domain.NewPasswordHash(hasher, "secret1")
		require.NoError(t, err)
		assert.True(t, p.Matches(hasher, "secret1"))
		assert.False(t, p.Matches(hasher, "secret2"))
	})

	t.Run("rejects bad plaintext", func(t *testing.T) {
		for _, plain := range []string{"", "      ", "12345", strings.Repeat("x", 73)} {
			_, err := domain.NewPasswordHash(hasher, plain)
			assert.True(t, apperror.Is(err, apperror.KindValidation), "plain %q", plain)
		}
	})

	t.Run("accepts boundaries", func(t *testing.T) {
		_, err := domain.NewPasswordHash(hasher, "123456")
		assert.NoError(t, err)
		_, err = domain.NewPasswordHash(hasher, strings.Repeat("x", 72))
		assert.NoError(t, err)
	})

	t.Run("from stored hash", func(t *testing.T) {
		_, err := domain.PasswordHashFromStored("")
		assert.Error(t, err)

		p, err := domain.PasswordHashFromStored("hashed:abc")
		require.NoError(t, err)
		assert.True(t, p.Matches(hasher, "abc"))
	})

	t.Run("never prints the hash", func(t *testing.T) {
		p, err := domain.NewPasswordHash(hasher, "secret1")
		require.NoError(t, err)

		assert.NotContains(t, p.String(), "secret1")
		assert.NotContains(t, fmt.Sprintf("%v %+v %#v", p, p, p), "hashed:")
		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `"[REDACTED]"`, string(out))
	})
}

func TestParseUserRole(t *testing.T) {
	role, err := domain.ParseUserRole("company")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCompany, role)

	_, err = domain.ParseUserRole("ADMIN")
	assert.Error(t, err)
	_, err = domain.ParseUserRole("")
	assert.Error(t, err)
}

func TestCanTransitionStatus(t *testing.T) {
	statuses := []domain.ApplicationStatus{domain.ApplicationPending, domain.ApplicationAccepted, domain.ApplicationRejected}
	legal := map[[2]domain.ApplicationStatus]bool{
		{domain.ApplicationPending, domain.ApplicationAccepted}: true,
		{domain.ApplicationPending, domain.ApplicationRejected}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, legal[[2]domain.ApplicationStatus{from, to}], domain.CanTransitionStatus(from, to), "%s -> %s", from, to)
		}
	}
}

func TestPagination(t *testing.T) {
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 100}, domain.ValidatePaginationParams(0, 500))
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, domain.ValidatePaginationParams(2, 5))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 10}, domain.ValidatePaginationParams(-3, -1))

	meta := domain.CalculatePagination(2, 10, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 0, domain.CalculatePagination(1, 10, 0).TotalPages)
	assert.Equal(t, 20, domain.PaginationParams{Page: 3, Limit: 10}.Offset())

	for _, limit := range []int{1, 10, 100} {
		huge := domain.ValidatePaginationParams(math.MaxInt, limit)
		assert.GreaterOrEqual(t, huge.Offset(), 0, "limit %d", limit)
		assert.Equal(t, limit, huge.Limit)
	}
	assert.GreaterOrEqual(t, domain.ValidatePaginationParams(1000000000000000000, 10).Offset(), 0)
}
