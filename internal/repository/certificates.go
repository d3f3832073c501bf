package repository

import (
	"context"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const certificatesTable = "certificates"

type CertificateRepository struct {
	db dbtx
}

func NewCertificateRepository(s *server.Server) *CertificateRepository {
	return &CertificateRepository{db: poolOf(s)}
}

func (r *CertificateRepository) ListActiveCertificates(ctx context.Context) ([]model.Certificate, error) {
	return collectAll[model.Certificate](ctx, r.db, certificatesTable,
		`SELECT * FROM certificates WHERE is_active ORDER BY "order", created_at`)
}

// SaveCertificates updates entries that carry an id in place and appends the
// rest after the current highest order, in one transaction.
func (r *CertificateRepository) SaveCertificates(ctx context.Context, certs []model.CertificateInput) ([]model.Certificate, error) {
	saved := make([]model.Certificate, 0, len(certs))

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		next, err := maxOrder(ctx, tx, certificatesTable)
		if err != nil {
			return err
		}

		for _, in := range certs {
			requiredDocuments := in.RequiredDocuments
			if requiredDocuments == nil {
				requiredDocuments = []string{}
			}
			isActive := true
			if in.IsActive != nil {
				isActive = *in.IsActive
			}

			args := pgx.NamedArgs{
				"name":               in.CertificateName,
				"description":        in.CertificateDescription,
				"required_documents": requiredDocuments,
				"apply_online_url":   in.ApplyOnlineURL,
				"is_active":          isActive,
			}

			var cert *model.Certificate
			if in.ID != nil {
				args["id"] = *in.ID
				cert, err = collectOne[model.Certificate](ctx, tx, certificatesTable, `
					UPDATE certificates
					SET certificate_name = @name, certificate_description = @description,
						required_documents = @required_documents, apply_online_url = @apply_online_url,
						is_active = @is_active
					WHERE id = @id
					RETURNING *`, args)
			} else {
				next++
				args["order"] = next
				cert, err = collectOne[model.Certificate](ctx, tx, certificatesTable, `
					INSERT INTO certificates (certificate_name, certificate_description,
						required_documents, apply_online_url, is_active, "order")
					VALUES (@name, @description, @required_documents, @apply_online_url, @is_active, @order)
					RETURNING *`, args)
			}
			if err != nil {
				return err
			}
			saved = append(saved, *cert)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *CertificateRepository) DeleteCertificate(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	return deleteByID[model.Certificate](ctx, r.db, certificatesTable, id)
}
