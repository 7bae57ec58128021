package domain

import "testing"

func TestPopunderConfigValidate(t *testing.T) {
	valid := PopunderConfig{
		TriggerType: TriggerClick,
		Frequency:   FrequencyOnce,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := []PopunderConfig{
		{TriggerType: "hover", Frequency: FrequencyOnce},
		{TriggerType: TriggerTime, Frequency: "daily"},
		{TriggerType: TriggerScroll, Frequency: FrequencyAlways, MinCPM: -1},
		{},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("config %d accepted: %+v", i, cfg)
		}
	}
}
