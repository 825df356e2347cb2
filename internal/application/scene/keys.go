package scene

// Keys of the built-in scenes
const (
	KeyMenu              = DefaultHome
	KeyGameModeSelection = "game_mode_selection"
	KeySettings          = "settings"
	KeyPlay              = "play"
	KeyTest              = "test"
)
