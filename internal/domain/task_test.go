package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_EffectiveFields_Defaults(t *testing.T) {
	task := Task{Title: "Call lead"}

	assert.Equal(t, 30, task.EffectiveEstimate())
	assert.Equal(t, 2, task.EffectiveUrgency(), "unset priority derives low urgency")
	assert.Equal(t, 3, task.EffectiveImpact())
}

func TestTask_EffectiveUrgency_PriorityFallback(t *testing.T) {
	cases := []struct {
		priority Priority
		want     int
	}{
		{PriorityHigh, 5},
		{PriorityMedium, 3},
		{PriorityLow, 2},
	}
	for _, tc := range cases {
		task := Task{Priority: tc.priority}
		assert.Equal(t, tc.want, task.EffectiveUrgency(), "priority %s", tc.priority)
	}

	explicit := Task{Priority: PriorityLow, Urgency: 4}
	assert.Equal(t, 4, explicit.EffectiveUrgency(), "explicit urgency wins over priority")
}

func TestTask_RevenueRelevant(t *testing.T) {
	assert.True(t, (&Task{DealID: "d-1"}).RevenueRelevant())
	assert.True(t, (&Task{Type: TypeRevenue}).RevenueRelevant())
	assert.False(t, (&Task{Type: TypeDelivery}).RevenueRelevant())
}

func TestParseTaskStatus_FreeFormLabels(t *testing.T) {
	assert.Equal(t, StatusNotStarted, ParseTaskStatus("Not Started"))
	assert.Equal(t, StatusNotStarted, ParseTaskStatus(""))
	assert.Equal(t, StatusCompleted, ParseTaskStatus("Completed"))
	assert.Equal(t, StatusCompleted, ParseTaskStatus("done"))
	assert.Equal(t, StatusBlocked, ParseTaskStatus("Blocked"))
	assert.Equal(t, StatusInProgress, ParseTaskStatus("In Progress"))
	assert.Equal(t, StatusOther, ParseTaskStatus("waiting on client"))
}

func TestParseTaskType_FreeFormLabels(t *testing.T) {
	assert.Equal(t, TypeRevenue, ParseTaskType("Revenue"))
	assert.Equal(t, TypeSystem, ParseTaskType("System"))
	assert.Equal(t, TypeDelivery, ParseTaskType(""))
	assert.Equal(t, TypeDelivery, ParseTaskType("Delivery"))
	assert.Equal(t, TypeOther, ParseTaskType("admin"))
}
