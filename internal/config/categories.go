package config

var CategoryWeights = map[string]int{
	"🎵 Music":        0,
	"🕯️ Information": 10,
}
