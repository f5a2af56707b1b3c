// Package config implements C8, the configuration validator: given a map
// of recognized tuning options, it produces a ValidationReport of
// critical errors, advisory warnings, and descriptive infos, plus named
// scenario presets.
//
// Grounded on sim/validador_simulacion.py's ValidadorSimulacion in the
// original source: the per-option range table, the "only validate keys
// that are present" policy, the edge-count/density estimate, and the
// named scenario presets (pequena_ciudad/ciudad_mediana/ciudad_grande)
// all carry over under their specified English option names.
package config
