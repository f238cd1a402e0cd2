package config

// GetDefaults returns the built-in parameter values, keyed by koanf path.
// They are the constants of the published puzzles.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"day06.packet_window":  4,
		"day06.message_window": 14,

		"day07.small_limit":   100000,
		"day07.disk_size":     70000000,
		"day07.required_free": 30000000,

		"day10.crt_width": 40,

		"day11.rounds_relieved": 20,
		"day11.rounds_anxious":  10000,
		"day11.relief":          3,

		"day14.source_x": 500,

		"day15.row":   2000000,
		"day15.bound": 4000000,

		"day16.minutes":             30,
		"day16.minutes_with_helper": 26,

		"day17.rocks_short": 2022,
		"day17.rocks_long":  int64(1000000000000),

		"day19.minutes_short":   24,
		"day19.minutes_long":    32,
		"day19.long_blueprints": 3,

		"day20.decryption_key": 811589153,
		"day20.rounds":         10,
	}
}
