package config

// Preset is a recommended starting configuration for a named scenario.
type Preset struct {
	NumNodesMin, NumNodesMax int
	DensityMin, DensityMax   float64
	ClientsPerNodeMin        int
	ClientsPerNodeMax        int
	PctStorage               float64
	PctCharging              float64
	PctClient                float64
	ProbEdge                 float64
	DroneBattery             float64
	DroneConsumption         float64
	StationCapacity          float64
	RechargeCost             float64
}

// presets mirrors sim/validador_simulacion.py's escenarios /
// obtener_configuracion_recomendada tables, renamed to the English
// scenario tags this specification uses.
var presets = map[string]Preset{
	"small_town": {
		NumNodesMin: 10, NumNodesMax: 50,
		DensityMin: 0.2, DensityMax: 0.4,
		ClientsPerNodeMin: 1, ClientsPerNodeMax: 3,
		PctStorage: 25, PctCharging: 35, PctClient: 40, ProbEdge: 0.3,
		DroneBattery: 1000, DroneConsumption: 2.0, StationCapacity: 3, RechargeCost: 3.0,
	},
	"mid_city": {
		NumNodesMin: 50, NumNodesMax: 200,
		DensityMin: 0.15, DensityMax: 0.35,
		ClientsPerNodeMin: 2, ClientsPerNodeMax: 8,
		PctStorage: 20, PctCharging: 30, PctClient: 50, ProbEdge: 0.25,
		DroneBattery: 2000, DroneConsumption: 1.8, StationCapacity: 5, RechargeCost: 4.0,
	},
	"large_city": {
		NumNodesMin: 200, NumNodesMax: 500,
		DensityMin: 0.1, DensityMax: 0.3,
		ClientsPerNodeMin: 5, ClientsPerNodeMax: 15,
		PctStorage: 15, PctCharging: 25, PctClient: 60, ProbEdge: 0.2,
		DroneBattery: 3000, DroneConsumption: 1.5, StationCapacity: 8, RechargeCost: 5.0,
	},
}

// GetPreset looks up a named scenario preset.
func GetPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// matchScenario reports the scenario tag whose node-count and density
// bands both contain (n, p), if any.
func matchScenario(n int, p float64) (string, bool) {
	for _, name := range []string{"small_town", "mid_city", "large_city"} {
		preset := presets[name]
		if n >= preset.NumNodesMin && n <= preset.NumNodesMax && p >= preset.DensityMin && p <= preset.DensityMax {
			return name, true
		}
	}
	return "", false
}
