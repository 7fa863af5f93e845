package music

import "tastybot/pkg/cmd"

// Commands returns every music command sharing deps.
func Commands(deps *Deps) []cmd.Command {
	return []cmd.Command{
		&MusicCommand{Deps: deps},
		&AlbumCommand{Deps: deps},
		&PlayCommand{Deps: deps},
		&StopCommand{Deps: deps},
		&NextCommand{Deps: deps},
		&PlaylistCommand{Deps: deps},
		&TastycoolCommand{Deps: deps},
		&TracksCommand{Deps: deps},
	}
}
