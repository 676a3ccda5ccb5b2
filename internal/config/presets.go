package config

import "sort"

var Presets = map[string]*Config{
	"rc": {
		Name: "rc",
		Elements: []ElementConfig{
			{Name: "source", Kind: "Se"}, {Name: "loop", Kind: "1"},
			{Name: "resistor", Kind: "R"}, {Name: "capacitor", Kind: "C"},
		},
		Bonds: []BondConfig{
			{From: "source", To: "loop"}, {From: "loop", To: "resistor"}, {From: "loop", To: "capacitor"},
		},
		Solve: []string{"e:2"},
	},
	"rlc": {
		Name: "rlc",
		Elements: []ElementConfig{
			{Name: "source", Kind: "Se"}, {Name: "loop", Kind: "1"},
			{Name: "resistor", Kind: "R"}, {Name: "inductor", Kind: "I"}, {Name: "capacitor", Kind: "C"},
		},
		Bonds: []BondConfig{
			{From: "source", To: "loop"}, {From: "loop", To: "resistor"},
			{From: "loop", To: "inductor"}, {From: "loop", To: "capacitor"},
		},
		Solve: []string{"e:3"},
	},
	"parallel": {
		Name: "parallel",
		Elements: []ElementConfig{
			{Name: "source", Kind: "Sf"}, {Name: "node", Kind: "0"},
			{Name: "r1", Kind: "R"}, {Name: "r2", Kind: "R"},
		},
		Bonds: []BondConfig{
			{From: "source", To: "node"}, {From: "node", To: "r1"}, {From: "node", To: "r2"},
		},
		Solve: []string{"f:2"},
	},
	"dc-motor": {
		Name: "dc-motor",
		Elements: []ElementConfig{
			{Name: "supply", Kind: "Se"}, {Name: "armature", Kind: "1"},
			{Name: "winding", Kind: "R"}, {Name: "inductance", Kind: "I"},
			{Name: "motor", Kind: "GY"}, {Name: "shaft", Kind: "1"},
			{Name: "rotor", Kind: "I"}, {Name: "friction", Kind: "R"},
		},
		Bonds: []BondConfig{
			{From: "supply", To: "armature"}, {From: "armature", To: "winding"},
			{From: "armature", To: "inductance"}, {From: "armature", To: "motor"},
			{From: "motor", To: "shaft"}, {From: "shaft", To: "rotor"}, {From: "shaft", To: "friction"},
		},
		Solve: []string{"e:4"},
	},
	"lever": {
		Name: "lever",
		Elements: []ElementConfig{
			{Name: "push", Kind: "Se"}, {Name: "arm", Kind: "TF"},
			{Name: "tip", Kind: "1"}, {Name: "mass", Kind: "I"}, {Name: "spring", Kind: "C"},
		},
		Bonds: []BondConfig{
			{From: "push", To: "arm"}, {From: "arm", To: "tip"},
			{From: "tip", To: "mass"}, {From: "tip", To: "spring"},
		},
		Solve: []string{"e:1"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
