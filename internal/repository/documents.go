package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const documentsTable = "documents"

type DocumentRepository struct {
	db dbtx
}

func NewDocumentRepository(s *server.Server) *DocumentRepository {
	return &DocumentRepository{db: poolOf(s)}
}

// ListDocuments returns documents newest first, filtered by category when it is not empty.
func (r *DocumentRepository) ListDocuments(ctx context.Context, category string) ([]model.Document, error) {
	return collectAll[model.Document](ctx, r.db, documentsTable, `
		SELECT * FROM documents
		WHERE (@category = '' OR category = @category)
		ORDER BY created_at DESC`,
		pgx.NamedArgs{"category": category})
}

func (r *DocumentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	return collectOne[model.Document](ctx, r.db, documentsTable,
		`SELECT * FROM documents WHERE id = $1`, id)
}

func documentArgs(in model.DocumentInput) pgx.NamedArgs {
	var data any
	if len(in.Data) > 0 {
		data = in.Data
	}
	return pgx.NamedArgs{
		"title":       in.Title,
		"description": in.Description,
		"category":    in.Category,
		"data":        data,
	}
}

// CreateDocuments inserts all documents or none.
func (r *DocumentRepository) CreateDocuments(ctx context.Context, docs []model.DocumentInput) ([]model.Document, error) {
	created := make([]model.Document, 0, len(docs))

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, in := range docs {
			doc, err := collectOne[model.Document](ctx, tx, documentsTable, `
				INSERT INTO documents (title, description, category, data)
				VALUES (@title, @description, @category, COALESCE(@data, '{}'::jsonb))
				RETURNING *`, documentArgs(in))
			if err != nil {
				return err
			}
			created = append(created, *doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *DocumentRepository) UpdateDocument(ctx context.Context, id uuid.UUID, in model.DocumentInput) (*model.Document, error) {
	args := documentArgs(in)
	args["id"] = id

	return collectOne[model.Document](ctx, r.db, documentsTable, `
		UPDATE documents
		SET title = @title, description = @description, category = @category,
			data = COALESCE(@data, data)
		WHERE id = @id
		RETURNING *`, args)
}

func (r *DocumentRepository) DeleteDocument(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	return deleteByID[model.Document](ctx, r.db, documentsTable, id)
}

// DeleteDocuments removes every listed id and returns how many rows went away.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}
	return tag.RowsAffected(), nil
}
