package repositories

import (
	"context"
	"time"

	"github.com/calebmorton/hireboard/internal/database"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{pool: db.Pool}
}

func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	message.ID = uuid.New().String()
	message.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID, message.Name, message.Email, message.Message, message.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return message, nil
}
