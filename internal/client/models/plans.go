package models

// Plan describes one purchasable subscription tier. The catalog is fixed
// configuration resolved once at startup, not rebuilt per render.
type Plan struct {
	Name      string
	Price     string
	Period    string
	LookupKey string
}

var plans = []Plan{
	{Name: "basic", Price: "$5", Period: "1 Month", LookupKey: "test_key_1"},
	{Name: "advanced", Price: "$10", Period: "1 Month", LookupKey: "test_key_2"},
	{Name: "unlimited", Price: "$25", Period: "1 Month", LookupKey: "test_key_3"},
}

// Plans returns a copy of the plan catalog so callers cannot mutate it.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// LookupPlan finds a plan by name. The second return value reports whether
// the plan exists.
func LookupPlan(name string) (Plan, bool) {
	for _, p := range plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}
