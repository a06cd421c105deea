// Package catalog holds the closed set of logical message ids and the
// dispatch table mapping (opcode, phase, direction, version) to them.
//
// Resolve consults the table on receive. A sender already knows its
// logical id; codec.Encode looks up the matching opcode through
// OpcodeFor, an inverse index built from the same table at init.
package catalog

import "github.com/janfel/mcproto/format"

// ID is a stable identifier for a message's meaning, independent of
// opcode and protocol version.
type ID int

const (
	Unknown ID = iota

	// Handshake phase.
	Handshake

	// Status phase.
	StatusRequest
	StatusResponse
	StatusPing
	StatusPong

	// Login phase.
	LoginStart
	LoginDisconnect
	LoginSuccess
	LoginSetCompression
	LoginAcknowledged

	// Config phase (v765 only).
	ConfigFinish
	ConfigPing
	ConfigRegistryData
	ConfigRemoveResourcePack
	ConfigAddResourcePack
	ConfigDisconnect

	// Play phase, server to client.
	JoinGame
	ChatMessage
	TimeUpdate
	EntityEquipment
	SpawnPosition
	UpdateHealth
	Respawn
	PlayerLookAndPosition
	HeldItemChange
	UseBed
	Animation
	SpawnPlayer
	CollectItem
	SpawnMob
	SpawnPainting
	SpawnExperienceOrb
	EntityVelocity
	Entity
	EntityRelativeMove
	EntityLook
	EntityLookAndRelativeMove
	EntityTeleport
	EntityHeadLook
	EntityStatus
	AttachEntity
	EntityMetadata
	EntityEffect
	RemoveEntityEffect
	SetExperience
	EntityProperties
	ChunkData
	MultiBlockChange
	BlockChange
	BlockAction
	BlockBreakAnimation
	MapChunkBulk
	Explosion
	Effect
	SoundEffect
	ChangeGameState
	PlayerAbilities
	PluginMessage
	Disconnect
	ChangeDifficulty

	// Play phase, both directions.
	KeepAliveClientbound
	KeepAliveServerbound
)

// names is deliberately parallel to the const block above; String falls
// back to "unknown" for anything out of range, matching the facade's
// "unknown logical id" contract rather than panicking.
var names = [...]string{
	Unknown:                   "unknown",
	Handshake:                 "handshake",
	StatusRequest:             "status_request",
	StatusResponse:            "status_response",
	StatusPing:                "status_ping",
	StatusPong:                "status_pong",
	LoginStart:                "login_start",
	LoginDisconnect:           "login_disconnect",
	LoginSuccess:              "login_success",
	LoginSetCompression:       "login_set_compression",
	LoginAcknowledged:         "login_acknowledged",
	ConfigFinish:              "config_finish",
	ConfigPing:                "config_ping",
	ConfigRegistryData:        "config_registry_data",
	ConfigRemoveResourcePack:  "config_remove_resource_pack",
	ConfigAddResourcePack:     "config_add_resource_pack",
	ConfigDisconnect:          "config_disconnect",
	JoinGame:                  "join_game",
	ChatMessage:               "chat_message",
	TimeUpdate:                "time_update",
	EntityEquipment:           "entity_equipment",
	SpawnPosition:             "spawn_position",
	UpdateHealth:              "update_health",
	Respawn:                   "respawn",
	PlayerLookAndPosition:     "player_look_and_position",
	HeldItemChange:            "held_item_change",
	UseBed:                    "use_bed",
	Animation:                 "animation",
	SpawnPlayer:               "spawn_player",
	CollectItem:               "collect_item",
	SpawnMob:                  "spawn_mob",
	SpawnPainting:             "spawn_painting",
	SpawnExperienceOrb:        "spawn_experience_orb",
	EntityVelocity:            "entity_velocity",
	Entity:                    "entity",
	EntityRelativeMove:        "entity_relative_move",
	EntityLook:                "entity_look",
	EntityLookAndRelativeMove: "entity_look_and_relative_move",
	EntityTeleport:            "entity_teleport",
	EntityHeadLook:            "entity_head_look",
	EntityStatus:              "entity_status",
	AttachEntity:              "attach_entity",
	EntityMetadata:            "entity_metadata",
	EntityEffect:              "entity_effect",
	RemoveEntityEffect:        "remove_entity_effect",
	SetExperience:             "set_experience",
	EntityProperties:          "entity_properties",
	ChunkData:                 "chunk_data",
	MultiBlockChange:          "multi_block_change",
	BlockChange:               "block_change",
	BlockAction:               "block_action",
	BlockBreakAnimation:       "block_break_animation",
	MapChunkBulk:              "map_chunk_bulk",
	Explosion:                 "explosion",
	Effect:                    "effect",
	SoundEffect:               "sound_effect",
	ChangeGameState:           "change_game_state",
	PlayerAbilities:           "player_abilities",
	PluginMessage:             "plugin_message",
	Disconnect:                "disconnect",
	ChangeDifficulty:          "change_difficulty",
	KeepAliveClientbound:      "keep_alive_clientbound",
	KeepAliveServerbound:      "keep_alive_serverbound",
}

// String renders the logical id's stable name.
func (id ID) String() string {
	if id < 0 || int(id) >= len(names) || names[id] == "" {
		return "unknown"
	}
	return names[id]
}

// Key is a dispatch key: everything needed to resolve an inbound opcode
// to a logical id.
type Key struct {
	Opcode    int32
	Phase     format.Phase
	Direction format.Direction
	Version   format.ProtocolVersion
}

var table = map[Key]ID{
	{0x00, format.PhaseHandshake, format.ClientToServer, format.V765}: Handshake,
	{0x00, format.PhaseHandshake, format.ClientToServer, format.V47}:  Handshake,

	{0x00, format.PhaseStatus, format.ClientToServer, format.V765}: StatusRequest,
	{0x00, format.PhaseStatus, format.ClientToServer, format.V47}:  StatusRequest,
	{0x00, format.PhaseStatus, format.ServerToClient, format.V765}: StatusResponse,
	{0x00, format.PhaseStatus, format.ServerToClient, format.V47}:  StatusResponse,
	{0x01, format.PhaseStatus, format.ClientToServer, format.V765}: StatusPing,
	{0x01, format.PhaseStatus, format.ClientToServer, format.V47}:  StatusPing,
	{0x01, format.PhaseStatus, format.ServerToClient, format.V765}: StatusPong,
	{0x01, format.PhaseStatus, format.ServerToClient, format.V47}:  StatusPong,

	{0x00, format.PhaseLogin, format.ClientToServer, format.V765}: LoginStart,
	{0x00, format.PhaseLogin, format.ClientToServer, format.V47}:  LoginStart,
	{0x00, format.PhaseLogin, format.ServerToClient, format.V765}: LoginDisconnect,
	{0x00, format.PhaseLogin, format.ServerToClient, format.V47}:  LoginDisconnect,
	{0x02, format.PhaseLogin, format.ServerToClient, format.V765}: LoginSuccess,
	{0x02, format.PhaseLogin, format.ServerToClient, format.V47}:  LoginSuccess,
	{0x03, format.PhaseLogin, format.ServerToClient, format.V765}: LoginSetCompression,
	{0x03, format.PhaseLogin, format.ServerToClient, format.V47}:  LoginSetCompression,
	{0x03, format.PhaseLogin, format.ClientToServer, format.V765}: LoginAcknowledged,

	{0x03, format.PhaseConfig, format.ServerToClient, format.V765}: ConfigFinish,
	{0x01, format.PhaseConfig, format.ServerToClient, format.V765}: ConfigPing,
	{0x07, format.PhaseConfig, format.ServerToClient, format.V765}: ConfigRegistryData,
	{0x06, format.PhaseConfig, format.ServerToClient, format.V765}: ConfigRemoveResourcePack,
	{0x09, format.PhaseConfig, format.ServerToClient, format.V765}: ConfigAddResourcePack,
	{0x02, format.PhaseConfig, format.ServerToClient, format.V765}: ConfigDisconnect,

	{0x01, format.PhasePlay, format.ServerToClient, format.V47}:  JoinGame,
	{0x02, format.PhasePlay, format.ServerToClient, format.V47}:  ChatMessage,
	{0x03, format.PhasePlay, format.ServerToClient, format.V47}:  TimeUpdate,
	{0x04, format.PhasePlay, format.ServerToClient, format.V47}:  EntityEquipment,
	{0x05, format.PhasePlay, format.ServerToClient, format.V47}:  SpawnPosition,
	{0x06, format.PhasePlay, format.ServerToClient, format.V47}:  UpdateHealth,
	{0x07, format.PhasePlay, format.ServerToClient, format.V47}:  Respawn,
	{0x08, format.PhasePlay, format.ServerToClient, format.V47}:  PlayerLookAndPosition,
	{0x09, format.PhasePlay, format.ServerToClient, format.V47}:  HeldItemChange,
	{0x0A, format.PhasePlay, format.ServerToClient, format.V47}:  UseBed,
	{0x0B, format.PhasePlay, format.ServerToClient, format.V47}:  Animation,
	{0x0C, format.PhasePlay, format.ServerToClient, format.V47}:  SpawnPlayer,
	{0x0D, format.PhasePlay, format.ServerToClient, format.V47}:  CollectItem,
	{0x0E, format.PhasePlay, format.ServerToClient, format.V47}:  SpawnMob,
	{0x0F, format.PhasePlay, format.ServerToClient, format.V47}:  SpawnPainting,
	{0x10, format.PhasePlay, format.ServerToClient, format.V47}:  SpawnExperienceOrb,
	{0x12, format.PhasePlay, format.ServerToClient, format.V47}:  EntityVelocity,
	{0x14, format.PhasePlay, format.ServerToClient, format.V47}:  Entity,
	{0x15, format.PhasePlay, format.ServerToClient, format.V47}:  EntityRelativeMove,
	{0x16, format.PhasePlay, format.ServerToClient, format.V47}:  EntityLook,
	{0x17, format.PhasePlay, format.ServerToClient, format.V47}:  EntityLookAndRelativeMove,
	{0x18, format.PhasePlay, format.ServerToClient, format.V47}:  EntityTeleport,
	{0x19, format.PhasePlay, format.ServerToClient, format.V47}:  EntityHeadLook,
	{0x1A, format.PhasePlay, format.ServerToClient, format.V47}:  EntityStatus,
	{0x1B, format.PhasePlay, format.ServerToClient, format.V47}:  AttachEntity,
	{0x1C, format.PhasePlay, format.ServerToClient, format.V47}:  EntityMetadata,
	{0x1D, format.PhasePlay, format.ServerToClient, format.V47}:  EntityEffect,
	{0x1E, format.PhasePlay, format.ServerToClient, format.V47}:  RemoveEntityEffect,
	{0x1F, format.PhasePlay, format.ServerToClient, format.V47}:  SetExperience,
	{0x20, format.PhasePlay, format.ServerToClient, format.V47}:  EntityProperties,
	{0x21, format.PhasePlay, format.ServerToClient, format.V47}:  ChunkData,
	{0x22, format.PhasePlay, format.ServerToClient, format.V47}:  MultiBlockChange,
	{0x23, format.PhasePlay, format.ServerToClient, format.V47}:  BlockChange,
	{0x24, format.PhasePlay, format.ServerToClient, format.V47}:  BlockAction,
	{0x25, format.PhasePlay, format.ServerToClient, format.V47}:  BlockBreakAnimation,
	{0x26, format.PhasePlay, format.ServerToClient, format.V47}:  MapChunkBulk,
	{0x27, format.PhasePlay, format.ServerToClient, format.V47}:  Explosion,
	{0x28, format.PhasePlay, format.ServerToClient, format.V47}:  Effect,
	{0x29, format.PhasePlay, format.ServerToClient, format.V47}:  SoundEffect,
	{0x2B, format.PhasePlay, format.ServerToClient, format.V47}:  ChangeGameState,
	{0x39, format.PhasePlay, format.ServerToClient, format.V47}:  PlayerAbilities,
	{0x3F, format.PhasePlay, format.ServerToClient, format.V47}:  PluginMessage,
	{0x40, format.PhasePlay, format.ServerToClient, format.V47}:  Disconnect,
	{0x1B, format.PhasePlay, format.ServerToClient, format.V765}: Disconnect,
	{0x41, format.PhasePlay, format.ServerToClient, format.V47}:  ChangeDifficulty,

	{0x00, format.PhasePlay, format.ServerToClient, format.V47}:  KeepAliveClientbound,
	{0x24, format.PhasePlay, format.ServerToClient, format.V765}: KeepAliveClientbound,
	{0x00, format.PhasePlay, format.ClientToServer, format.V47}:  KeepAliveServerbound,
	{0x14, format.PhasePlay, format.ClientToServer, format.V765}: KeepAliveServerbound,
}

// Resolve maps an inbound dispatch key to a logical id, or Unknown if no
// message is registered for it. The facade, not this package, decides
// what to do with Unknown.
func Resolve(key Key) ID {
	if id, ok := table[key]; ok {
		return id
	}
	return Unknown
}

// sendKey is the inverse of Key: what an encoder needs to look up its
// own opcode: the inverse resolution every encoder performs as its
// first write.
type sendKey struct {
	ID        ID
	Phase     format.Phase
	Direction format.Direction
	Version   format.ProtocolVersion
}

var opcodes map[sendKey]int32

func init() {
	opcodes = make(map[sendKey]int32, len(table))
	for key, id := range table {
		opcodes[sendKey{ID: id, Phase: key.Phase, Direction: key.Direction, Version: key.Version}] = key.Opcode
	}
}

// OpcodeFor returns the opcode an encoder must write for id in the given
// phase/direction/version, or ok=false if no such message is defined.
func OpcodeFor(id ID, phase format.Phase, direction format.Direction, version format.ProtocolVersion) (int32, bool) {
	op, ok := opcodes[sendKey{ID: id, Phase: phase, Direction: direction, Version: version}]
	return op, ok
}
