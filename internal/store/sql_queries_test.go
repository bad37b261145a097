package store

import (
	"testing"

	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboardQuery_NoFilters(t *testing.T) {
	query, args, err := buildLeaderboardQuery(models.LeaderboardFilter{})
	require.NoError(t, err)

	assert.Contains(t, query, "RANK() OVER (ORDER BY total_score DESC)")
	assert.Contains(t, query, "FROM users")
	assert.Contains(t, query, "LIMIT 100")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildLeaderboardQuery_RoleAndSport(t *testing.T) {
	query, args, err := buildLeaderboardQuery(models.LeaderboardFilter{
		Role:  models.RoleAthlete,
		Sport: "Football",
		Limit: 10,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "role = $1")
	assert.Contains(t, query, "sport = $2")
	assert.Contains(t, query, "LIMIT 10")
	assert.Equal(t, []any{models.RoleAthlete, "Football"}, args)
}

func TestBuildLeaderboardQuery_LimitCapped(t *testing.T) {
	query, _, err := buildLeaderboardQuery(models.LeaderboardFilter{Limit: 100000})
	require.NoError(t, err)

	assert.Contains(t, query, "LIMIT 100")
}

func TestBuildUpdateProfileQuery_AllFields(t *testing.T) {
	name := "New Name"
	sport := "Hockey"
	location := "Pune"
	picture := "data:image/png;base64,xyz"

	query, args := buildUpdateProfileQuery(7, models.UpdateProfileRequest{
		Name:              &name,
		Sport:             &sport,
		Location:          &location,
		ProfilePictureURL: &picture,
	})

	assert.Contains(t, query, "name = $1")
	assert.Contains(t, query, "sport = $2")
	assert.Contains(t, query, "location = $3")
	assert.Contains(t, query, "profile_picture_url = $4")
	assert.Contains(t, query, "WHERE user_id = $5")
	assert.Contains(t, query, "RETURNING")
	assert.Equal(t, []any{name, sport, location, picture, int64(7)}, args)
}

func TestBuildUpdateProfileQuery_SingleField(t *testing.T) {
	sport := "Kabaddi"

	query, args := buildUpdateProfileQuery(3, models.UpdateProfileRequest{Sport: &sport})

	assert.Contains(t, query, "sport = $1")
	assert.Contains(t, query, "WHERE user_id = $2")
	assert.NotContains(t, query, "name =")
	assert.Equal(t, []any{sport, int64(3)}, args)
}

func TestBuildUpdateProfileQuery_NoFields(t *testing.T) {
	query, args := buildUpdateProfileQuery(3, models.UpdateProfileRequest{})

	// still a valid touch-updated_at statement
	assert.Contains(t, query, "UPDATE users SET updated_at = NOW()")
	assert.Contains(t, query, "WHERE user_id = $1")
	assert.Equal(t, []any{int64(3)}, args)
}
