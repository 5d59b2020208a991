package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/jkimaro/washpark-api/pkg/apperror"
)

func TestTranslateErrorNoRows(t *testing.T) {
	err := translateError(sql.ErrNoRows, "customer", "abc")
	assert.True(t, apperror.IsNotFound(err))
}

// The contact and identity columns carry UNIQUE constraints, so collisions
// on any of them must surface as DuplicateReference.
func TestTranslateErrorUniqueViolation(t *testing.T) {
	constraints := []string{
		"attendants_phone_key",
		"attendants_email_key",
		"attendants_id_number_key",
		"customers_phone_key",
		"customers_email_key",
		"customers_id_number_key",
		"vehicles_plate_number_key",
		"payments_transaction_ref_key",
	}

	for _, constraint := range constraints {
		t.Run(constraint, func(t *testing.T) {
			pqErr := &pq.Error{Code: "23505", Constraint: constraint}
			err := translateError(pqErr, "record", "abc")
			assert.Equal(t, apperror.CodeDuplicateReference, apperror.CodeOf(err))
		})
	}
}

func TestTranslateErrorForeignKeyViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23503", Constraint: "service_requests_service_type_id_fkey"}
	err := translateError(pqErr, "service type", "abc")
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
}

func TestTranslateErrorPassthrough(t *testing.T) {
	cause := errors.New("connection reset")
	err := translateError(cause, "payment", "abc")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
}

func TestTranslateErrorNil(t *testing.T) {
	assert.NoError(t, translateError(nil, "payment", "abc"))
}
