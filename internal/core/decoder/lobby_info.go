package decoder

// LobbyInfoData is one player in a multiplayer lobby.
type LobbyInfoData struct {
	AIControlled bool        `json:"ai_controlled" yaml:"ai_controlled"`
	Team         Team        `json:"team" yaml:"team"`
	Nationality  Nationality `json:"nationality" yaml:"nationality"`
	Name         string      `json:"name" yaml:"name"`
	ReadyStatus  ReadyStatus `json:"ready_status" yaml:"ready_status"`
}

// LobbyInfoPacket lists the players waiting in a multiplayer lobby.
type LobbyInfoPacket struct {
	Header     Header                   `json:"header" yaml:"header"`
	NumPlayers uint8                    `json:"num_players" yaml:"num_players"`
	Players    [TotalCars]LobbyInfoData `json:"players" yaml:"players"`
}

func (*LobbyInfoPacket) Kind() PacketKind       { return KindLobbyInfo }
func (p *LobbyInfoPacket) PacketHeader() Header { return p.Header }
func (*LobbyInfoPacket) packet()                {}

func decodeLobbyInfo(c *Cursor, h Header) (*LobbyInfoPacket, error) {
	r := &reader{c: c}
	p := &LobbyInfoPacket{Header: h, NumPlayers: r.u8()}
	for i := range p.Players {
		p.Players[i] = LobbyInfoData{
			AIControlled: r.flag(),
			Team:         enum(r, "team_id", r.u8, parseTeam),
			Nationality:  enum(r, "nationality", r.u8, parseNationality),
			Name:         r.name(),
			ReadyStatus:  enum(r, "ready_status", r.u8, parseReadyStatus),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
