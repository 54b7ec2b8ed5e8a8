package database

import (
	"context"

	"github.com/saathi-app/saathi/internal/models"
)

// CreateChat stores one question/answer exchange.
func (db *DB) CreateChat(ctx context.Context, userID int, message, response string) (*models.Chat, error) {
	chat := &models.Chat{UserID: userID}

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO chats (user_id, message, response, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, message, response, created_at
	`, userID, message, response).Scan(
		&chat.ID,
		&chat.Message,
		&chat.Response,
		&chat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return chat, nil
}

// ListChatsByUser returns the user's most recent exchanges, newest first.
func (db *DB) ListChatsByUser(ctx context.Context, userID, limit int) ([]models.Chat, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, message, response, created_at
		FROM chats
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []models.Chat{}
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(&chat.ID, &chat.UserID, &chat.Message, &chat.Response, &chat.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	return chats, rows.Err()
}
