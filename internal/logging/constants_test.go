package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if FieldFile == "" {
		t.Error("FieldFile constant should not be empty")
	}
	if FieldStage == "" {
		t.Error("FieldStage constant should not be empty")
	}
	if FieldTransactions == "" {
		t.Error("FieldTransactions constant should not be empty")
	}
	if FieldArchetype == "" {
		t.Error("FieldArchetype constant should not be empty")
	}
	if FieldOutputFile == "" {
		t.Error("FieldOutputFile constant should not be empty")
	}
}
