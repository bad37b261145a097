package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/sparkkhoj/spark-khoj/models"
)

const (
	userColumns = `user_id, name, email, password_hash, role, sport, location, profile_picture_url,
    district_rank, state_rank, total_score, created_at, updated_at`

	createUser = `INSERT INTO users (name, email, password_hash, role, sport, location, profile_picture_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	saveMessage = `INSERT INTO messages (sender_id, recipient_id, body)
    VALUES ($1, $2, $3)
    RETURNING message_id, sender_id, recipient_id, body, created_at;`

	findConversation = `SELECT message_id, sender_id, recipient_id, body, created_at
    FROM messages
    WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
    ORDER BY created_at;`

	// latest message per correspondent, both directions, newest conversations first
	findConversations = `SELECT DISTINCT ON (correspondent_id)
        correspondent_id, u.name, m.message_id, m.sender_id, m.recipient_id, m.body, m.created_at
    FROM (
        SELECT *,
            CASE WHEN sender_id = $1 THEN recipient_id ELSE sender_id END AS correspondent_id
        FROM messages
        WHERE sender_id = $1 OR recipient_id = $1
    ) m
    JOIN users u ON u.user_id = m.correspondent_id
    ORDER BY correspondent_id, m.created_at DESC;`

	updateProfileBase  = `UPDATE users SET updated_at = NOW()`
	updateProfileWhere = ` WHERE user_id = $%d RETURNING ` + userColumns + `;`

	defaultLeaderboardLimit = 100
)

// buildLeaderboardQuery assembles the leaderboard SELECT with squirrel.
// The rank is computed by the database over the filtered set, so a
// sport-scoped leaderboard is ranked within that sport.
func buildLeaderboardQuery(filter models.LeaderboardFilter) (string, []any, error) {
	builder := sq.Select(
		"RANK() OVER (ORDER BY total_score DESC) AS rank",
		"user_id", "name", "role", "sport", "location", "total_score",
	).
		From("users").
		OrderBy("total_score DESC", "user_id").
		PlaceholderFormat(sq.Dollar)

	if filter.Role != "" {
		builder = builder.Where(sq.Eq{"role": filter.Role})
	}
	if filter.Sport != "" {
		builder = builder.Where(sq.Eq{"sport": filter.Sport})
	}

	limit := filter.Limit
	if limit == 0 || limit > defaultLeaderboardLimit {
		limit = defaultLeaderboardLimit
	}
	builder = builder.Limit(limit)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateProfileQuery dynamically builds the UPDATE statement for a
// partial profile update. Nil fields in update produce no SET clause.
func buildUpdateProfileQuery(userID int64, update models.UpdateProfileRequest) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(updateProfileBase)

	args := make([]any, 0, 5)
	setClauses := make([]string, 0, 4)
	argIndex := 1

	if update.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *update.Name)
		argIndex++
	}

	if update.Sport != nil {
		setClauses = append(setClauses, fmt.Sprintf("sport = $%d", argIndex))
		args = append(args, *update.Sport)
		argIndex++
	}

	if update.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", argIndex))
		args = append(args, *update.Location)
		argIndex++
	}

	if update.ProfilePictureURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("profile_picture_url = $%d", argIndex))
		args = append(args, *update.ProfilePictureURL)
		argIndex++
	}

	if len(setClauses) > 0 {
		queryBuilder.WriteString(", ")
		queryBuilder.WriteString(strings.Join(setClauses, ", "))
	}

	queryBuilder.WriteString(fmt.Sprintf(updateProfileWhere, argIndex))
	args = append(args, userID)

	return queryBuilder.String(), args
}
