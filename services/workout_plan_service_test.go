package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanExercisesFromInput(t *testing.T) {
	squat := primitive.NewObjectID()
	bench := primitive.NewObjectID()

	exercises, err := planExercisesFromInput([]PlanExerciseInput{
		{ExerciseID: squat.Hex(), Sets: 5, Reps: 5},
		{ExerciseID: bench.Hex(), Sets: 3, Reps: 10},
	})
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Equal(t, squat, exercises[0].ExerciseID)
	assert.Equal(t, 5, exercises[0].Sets)
	assert.Equal(t, 5, exercises[0].Reps)
	assert.Equal(t, bench, exercises[1].ExerciseID)
}

func TestPlanExercisesFromInputBadID(t *testing.T) {
	_, err := planExercisesFromInput([]PlanExerciseInput{
		{ExerciseID: "not-hex", Sets: 3, Reps: 8},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid exerciseId")
}
