package task_test

import (
	"fmt"
	"testing"

	"feedback/internal/core/domain/model/task"
	"feedback/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(task.Unknown))
		assert.Equal(t, 1, int(task.Available))
		assert.Equal(t, 2, int(task.Accepted))
		assert.Equal(t, 3, int(task.PickingUp))
		assert.Equal(t, 4, int(task.Delivering))
		assert.Equal(t, 5, int(task.Completed))
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return lower-case wire names", func(t *testing.T) {
		assert.Equal(t, "available", task.Available.String())
		assert.Equal(t, "accepted", task.Accepted.String())
		assert.Equal(t, "picking-up", task.PickingUp.String())
		assert.Equal(t, "delivering", task.Delivering.String())
		assert.Equal(t, "completed", task.Completed.String())
		assert.Equal(t, "unknown", task.Unknown.String())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []task.Status{
			task.Available, task.Accepted, task.PickingUp, task.Delivering, task.Completed,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		for _, status := range []task.Status{task.Unknown, task.Status(-1), task.Status(6)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_LinearMachine(t *testing.T) {
	type transition struct {
		name  string
		from  task.Status
		apply func(task.Status) (task.Status, error)
		to    task.Status
	}

	transitions := []transition{
		{"accept", task.Available, task.Status.Accept, task.Accepted},
		{"start pickup", task.Accepted, task.Status.StartPickup, task.PickingUp},
		{"confirm pickup", task.PickingUp, task.Status.ConfirmPickup, task.Delivering},
		{"complete", task.Delivering, task.Status.Complete, task.Completed},
	}

	all := []task.Status{task.Available, task.Accepted, task.PickingUp, task.Delivering, task.Completed}

	for _, tr := range transitions {
		t.Run(fmt.Sprintf("%s succeeds only from %s", tr.name, tr.from), func(t *testing.T) {
			for _, from := range all {
				got, err := tr.apply(from)
				if from == tr.from {
					require.NoError(t, err)
					assert.Equal(t, tr.to, got)
				} else {
					require.Error(t, err)
				}
			}
		})
	}

	t.Run("losing the accept race is a conflict", func(t *testing.T) {
		for _, from := range []task.Status{task.Accepted, task.PickingUp, task.Delivering, task.Completed} {
			_, err := from.Accept()

			require.ErrorIs(t, err, errs.ErrConflict)
		}
	})

	t.Run("non-accept failures are invalid state", func(t *testing.T) {
		_, err := task.Available.StartPickup()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = task.Accepted.ConfirmPickup()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = task.Completed.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
