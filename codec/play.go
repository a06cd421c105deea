// Play-phase server-to-client messages. All of them are defined only on
// v47 within this catalog except disconnect, which v765 also defines.
// keep_alive lives in codec/keepalive.go, and the handshake/status/
// login/config messages are registered elsewhere.
package codec

import (
	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
	"github.com/janfel/mcproto/tagtree"
)

func init() {
	register(catalog.JoinGame, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.JoinGame)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteU8(m.GameMode); err != nil {
				return err
			}
			if err := cur.WriteI8(m.Dimension); err != nil {
				return err
			}
			if err := cur.WriteU8(m.Difficulty); err != nil {
				return err
			}
			if err := cur.WriteU8(m.MaxPlayers); err != nil {
				return err
			}
			if err := cur.WriteString(m.LevelType); err != nil {
				return err
			}
			return cur.WriteBool(m.ReducedDebugInfo)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.JoinGame{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.GameMode, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.Dimension, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Difficulty, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.MaxPlayers, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.LevelType, err = cur.ReadString(); err != nil {
				return m, err
			}
			m.ReducedDebugInfo, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.ChatMessage, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.ChatMessage)
			if err := cur.WriteString(m.Message); err != nil {
				return err
			}
			return cur.WriteI8(m.Position)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ChatMessage{}
			var err error
			if m.Message, err = cur.ReadString(); err != nil {
				return m, err
			}
			m.Position, err = cur.ReadI8()
			return m, err
		},
	)

	register(catalog.TimeUpdate, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.TimeUpdate)
			if err := cur.WriteI64(m.WorldAge); err != nil {
				return err
			}
			return cur.WriteI64(m.TimeOfDay)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.TimeUpdate{}
			var err error
			if m.WorldAge, err = cur.ReadI64(); err != nil {
				return m, err
			}
			m.TimeOfDay, err = cur.ReadI64()
			return m, err
		},
	)

	register(catalog.EntityEquipment, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityEquipment)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteI16(m.Slot); err != nil {
				return err
			}
			return cur.WriteSlot(m.Item)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityEquipment{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Slot, err = cur.ReadI16(); err != nil {
				return m, err
			}
			m.Item, err = cur.ReadSlot()
			return m, err
		},
	)

	register(catalog.SpawnPosition, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WritePosition(rec.(*message.SpawnPosition).Location)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SpawnPosition{}
			var err error
			m.Location, err = cur.ReadPosition()
			return m, err
		},
	)

	register(catalog.UpdateHealth, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.UpdateHealth)
			if err := cur.WriteF32(m.Health); err != nil {
				return err
			}
			if err := cur.WriteVarInt(m.Food); err != nil {
				return err
			}
			return cur.WriteF32(m.FoodSaturation)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.UpdateHealth{}
			var err error
			if m.Health, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.Food, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			m.FoodSaturation, err = cur.ReadF32()
			return m, err
		},
	)

	register(catalog.Respawn, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.Respawn)
			if err := cur.WriteI32(m.Dimension); err != nil {
				return err
			}
			if err := cur.WriteU8(m.Difficulty); err != nil {
				return err
			}
			if err := cur.WriteU8(m.GameMode); err != nil {
				return err
			}
			return cur.WriteString(m.LevelType)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Respawn{}
			var err error
			if m.Dimension, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Difficulty, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.GameMode, err = cur.ReadU8(); err != nil {
				return m, err
			}
			m.LevelType, err = cur.ReadString()
			return m, err
		},
	)

	register(catalog.PlayerLookAndPosition, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.PlayerLookAndPosition)
			for _, v := range []float64{m.X, m.Y, m.Z} {
				if err := cur.WriteF64(v); err != nil {
					return err
				}
			}
			if err := cur.WriteF32(m.Yaw); err != nil {
				return err
			}
			if err := cur.WriteF32(m.Pitch); err != nil {
				return err
			}
			return cur.WriteU8(m.Flags)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.PlayerLookAndPosition{}
			var err error
			if m.X, err = cur.ReadF64(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadF64(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadF64(); err != nil {
				return m, err
			}
			if m.Yaw, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.Pitch, err = cur.ReadF32(); err != nil {
				return m, err
			}
			m.Flags, err = cur.ReadU8()
			return m, err
		},
	)

	register(catalog.HeldItemChange, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteI8(rec.(*message.HeldItemChange).Slot)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.HeldItemChange{}
			var err error
			m.Slot, err = cur.ReadI8()
			return m, err
		},
	)

	register(catalog.UseBed, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.UseBed)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			return cur.WritePosition(m.Location)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.UseBed{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			m.Location, err = cur.ReadPosition()
			return m, err
		},
	)

	register(catalog.Animation, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.Animation)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			return cur.WriteU8(m.AnimationID)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Animation{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			m.AnimationID, err = cur.ReadU8()
			return m, err
		},
	)

	register(catalog.SpawnPlayer, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.SpawnPlayer)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteUUIDHalves(m.PlayerID); err != nil {
				return err
			}
			for _, v := range []int32{m.X, m.Y, m.Z} {
				if err := cur.WriteI32(v); err != nil {
					return err
				}
			}
			if err := cur.WriteI8(m.Yaw); err != nil {
				return err
			}
			if err := cur.WriteI8(m.Pitch); err != nil {
				return err
			}
			if err := cur.WriteI16(m.CurrentItem); err != nil {
				return err
			}
			return cur.WriteEntityMetadata(m.Metadata)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SpawnPlayer{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.PlayerID, err = cur.ReadUUIDHalves(); err != nil {
				return m, err
			}
			if m.X, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Yaw, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Pitch, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.CurrentItem, err = cur.ReadI16(); err != nil {
				return m, err
			}
			m.Metadata, err = cur.ReadEntityMetadata()
			return m, err
		},
	)

	register(catalog.CollectItem, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.CollectItem)
			if err := cur.WriteVarInt(m.CollectedEntityID); err != nil {
				return err
			}
			return cur.WriteVarInt(m.CollectorEntityID)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.CollectItem{}
			var err error
			if m.CollectedEntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			m.CollectorEntityID, err = cur.ReadVarInt()
			return m, err
		},
	)

	register(catalog.SpawnMob, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.SpawnMob)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteU8(m.MobType); err != nil {
				return err
			}
			for _, v := range []int32{m.X, m.Y, m.Z} {
				if err := cur.WriteI32(v); err != nil {
					return err
				}
			}
			for _, v := range []int8{m.Yaw, m.Pitch, m.HeadPitch} {
				if err := cur.WriteI8(v); err != nil {
					return err
				}
			}
			for _, v := range []int16{m.VelocityX, m.VelocityY, m.VelocityZ} {
				if err := cur.WriteI16(v); err != nil {
					return err
				}
			}
			return cur.WriteEntityMetadata(m.Metadata)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SpawnMob{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.MobType, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.X, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Yaw, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Pitch, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.HeadPitch, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.VelocityX, err = cur.ReadI16(); err != nil {
				return m, err
			}
			if m.VelocityY, err = cur.ReadI16(); err != nil {
				return m, err
			}
			if m.VelocityZ, err = cur.ReadI16(); err != nil {
				return m, err
			}
			m.Metadata, err = cur.ReadEntityMetadata()
			return m, err
		},
	)

	register(catalog.SpawnPainting, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.SpawnPainting)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteString(m.Title); err != nil {
				return err
			}
			if err := cur.WritePosition(m.Location); err != nil {
				return err
			}
			return cur.WriteI32(m.Direction)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SpawnPainting{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.Title, err = cur.ReadString(); err != nil {
				return m, err
			}
			if m.Location, err = cur.ReadPosition(); err != nil {
				return m, err
			}
			m.Direction, err = cur.ReadI32()
			return m, err
		},
	)

	register(catalog.SpawnExperienceOrb, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.SpawnExperienceOrb)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			for _, v := range []int32{m.X, m.Y, m.Z} {
				if err := cur.WriteI32(v); err != nil {
					return err
				}
			}
			return cur.WriteI16(m.Count)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SpawnExperienceOrb{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.X, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadI32(); err != nil {
				return m, err
			}
			m.Count, err = cur.ReadI16()
			return m, err
		},
	)

	register(catalog.EntityVelocity, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityVelocity)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			for _, v := range []int16{m.VelocityX, m.VelocityY, m.VelocityZ} {
				if err := cur.WriteI16(v); err != nil {
					return err
				}
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityVelocity{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.VelocityX, err = cur.ReadI16(); err != nil {
				return m, err
			}
			if m.VelocityY, err = cur.ReadI16(); err != nil {
				return m, err
			}
			m.VelocityZ, err = cur.ReadI16()
			return m, err
		},
	)

	register(catalog.Entity, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteVarInt(rec.(*message.Entity).EntityID)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Entity{}
			var err error
			m.EntityID, err = cur.ReadVarInt()
			return m, err
		},
	)

	register(catalog.EntityRelativeMove, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityRelativeMove)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			for _, v := range []int8{m.DX, m.DY, m.DZ} {
				if err := cur.WriteI8(v); err != nil {
					return err
				}
			}
			return cur.WriteBool(m.OnGround)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityRelativeMove{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.DX, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.DY, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.DZ, err = cur.ReadI8(); err != nil {
				return m, err
			}
			m.OnGround, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.EntityLook, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityLook)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteI8(m.Yaw); err != nil {
				return err
			}
			if err := cur.WriteI8(m.Pitch); err != nil {
				return err
			}
			return cur.WriteBool(m.OnGround)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityLook{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.Yaw, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Pitch, err = cur.ReadI8(); err != nil {
				return m, err
			}
			m.OnGround, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.EntityLookAndRelativeMove, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityLookAndRelativeMove)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			for _, v := range []int8{m.DX, m.DY, m.DZ, m.Yaw, m.Pitch} {
				if err := cur.WriteI8(v); err != nil {
					return err
				}
			}
			return cur.WriteBool(m.OnGround)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityLookAndRelativeMove{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.DX, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.DY, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.DZ, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Yaw, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Pitch, err = cur.ReadI8(); err != nil {
				return m, err
			}
			m.OnGround, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.EntityTeleport, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityTeleport)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			for _, v := range []int32{m.X, m.Y, m.Z} {
				if err := cur.WriteI32(v); err != nil {
					return err
				}
			}
			if err := cur.WriteI8(m.Yaw); err != nil {
				return err
			}
			if err := cur.WriteI8(m.Pitch); err != nil {
				return err
			}
			return cur.WriteBool(m.OnGround)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityTeleport{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.X, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Yaw, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Pitch, err = cur.ReadI8(); err != nil {
				return m, err
			}
			m.OnGround, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.EntityHeadLook, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityHeadLook)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			return cur.WriteI8(m.HeadYaw)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityHeadLook{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			m.HeadYaw, err = cur.ReadI8()
			return m, err
		},
	)

	register(catalog.EntityStatus, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityStatus)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			return cur.WriteI8(m.EntityStatus)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityStatus{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			m.EntityStatus, err = cur.ReadI8()
			return m, err
		},
	)

	register(catalog.AttachEntity, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.AttachEntity)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteI32(m.VehicleID); err != nil {
				return err
			}
			return cur.WriteBool(m.Leash)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.AttachEntity{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.VehicleID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			m.Leash, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.EntityMetadata, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityMetadata)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			return cur.WriteEntityMetadata(m.Metadata)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityMetadata{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			m.Metadata, err = cur.ReadEntityMetadata()
			return m, err
		},
	)

	register(catalog.EntityEffect, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityEffect)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteI8(m.EffectID); err != nil {
				return err
			}
			if err := cur.WriteI8(m.Amplifier); err != nil {
				return err
			}
			return cur.WriteI16(m.Duration)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityEffect{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.EffectID, err = cur.ReadI8(); err != nil {
				return m, err
			}
			if m.Amplifier, err = cur.ReadI8(); err != nil {
				return m, err
			}
			m.Duration, err = cur.ReadI16()
			return m, err
		},
	)

	register(catalog.RemoveEntityEffect, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.RemoveEntityEffect)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			return cur.WriteI8(m.EffectID)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.RemoveEntityEffect{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			m.EffectID, err = cur.ReadI8()
			return m, err
		},
	)

	register(catalog.SetExperience, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.SetExperience)
			if err := cur.WriteF32(m.ExperienceBar); err != nil {
				return err
			}
			if err := cur.WriteVarInt(m.Level); err != nil {
				return err
			}
			return cur.WriteVarInt(m.TotalExperience)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SetExperience{}
			var err error
			if m.ExperienceBar, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.Level, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			m.TotalExperience, err = cur.ReadVarInt()
			return m, err
		},
	)

	// EntityProperties wire counts come from len(Properties) and
	// len(Modifiers), never from a separately stored count field.
	register(catalog.EntityProperties, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.EntityProperties)
			if err := cur.WriteI32(m.EntityID); err != nil {
				return err
			}
			if err := cur.WriteI32(int32(len(m.Properties))); err != nil {
				return err
			}
			for _, p := range m.Properties {
				if err := cur.WriteString(p.Key); err != nil {
					return err
				}
				if err := cur.WriteF64(p.Value); err != nil {
					return err
				}
				if err := cur.WriteVarInt(int32(len(p.Modifiers))); err != nil {
					return err
				}
				for _, mod := range p.Modifiers {
					if err := cur.WriteUUIDHalves(mod.UUID); err != nil {
						return err
					}
					if err := cur.WriteF64(mod.Amount); err != nil {
						return err
					}
					if err := cur.WriteI8(mod.Operation); err != nil {
						return err
					}
				}
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.EntityProperties{}
			var err error
			if m.EntityID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			count, err := cur.ReadI32()
			if err != nil {
				return m, err
			}
			// Appending to nil keeps a zero-length array decoding back to
			// a nil slice, so round trips compare equal.
			for i := int32(0); i < count; i++ {
				var p message.Property
				if p.Key, err = cur.ReadString(); err != nil {
					return m, err
				}
				if p.Value, err = cur.ReadF64(); err != nil {
					return m, err
				}
				modCount, err := cur.ReadVarInt()
				if err != nil {
					return m, err
				}
				for j := int32(0); j < modCount; j++ {
					var mod message.Modifier
					if mod.UUID, err = cur.ReadUUIDHalves(); err != nil {
						return m, err
					}
					if mod.Amount, err = cur.ReadF64(); err != nil {
						return m, err
					}
					if mod.Operation, err = cur.ReadI8(); err != nil {
						return m, err
					}
					p.Modifiers = append(p.Modifiers, mod)
				}
				m.Properties = append(m.Properties, p)
			}
			return m, nil
		},
	)

	register(catalog.ChunkData, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.ChunkData)
			if err := cur.WriteI32(m.ChunkX); err != nil {
				return err
			}
			if err := cur.WriteI32(m.ChunkZ); err != nil {
				return err
			}
			if err := cur.WriteBool(m.GroundUpContinuous); err != nil {
				return err
			}
			if err := cur.WriteU16(m.PrimaryBitMask); err != nil {
				return err
			}
			return cur.WriteByteArray(m.Data)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ChunkData{}
			var err error
			if m.ChunkX, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.ChunkZ, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.GroundUpContinuous, err = cur.ReadBool(); err != nil {
				return m, err
			}
			if m.PrimaryBitMask, err = cur.ReadU16(); err != nil {
				return m, err
			}
			m.Data, err = cur.ReadByteArray()
			return m, err
		},
	)

	register(catalog.MultiBlockChange, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.MultiBlockChange)
			if err := cur.WriteI32(m.ChunkX); err != nil {
				return err
			}
			if err := cur.WriteI32(m.ChunkZ); err != nil {
				return err
			}
			if err := cur.WriteVarInt(int32(len(m.Records))); err != nil {
				return err
			}
			for _, r := range m.Records {
				if err := cur.WriteU8((r.X << 4) | (r.Z & 0x0F)); err != nil {
					return err
				}
				if err := cur.WriteU8(r.Y); err != nil {
					return err
				}
				if err := cur.WriteVarInt(r.BlockID); err != nil {
					return err
				}
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.MultiBlockChange{}
			var err error
			if m.ChunkX, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.ChunkZ, err = cur.ReadI32(); err != nil {
				return m, err
			}
			count, err := cur.ReadVarInt()
			if err != nil {
				return m, err
			}
			for i := int32(0); i < count; i++ {
				var r message.BlockChangeRecord
				xz, err := cur.ReadU8()
				if err != nil {
					return m, err
				}
				r.X = xz >> 4
				r.Z = xz & 0x0F
				if r.Y, err = cur.ReadU8(); err != nil {
					return m, err
				}
				if r.BlockID, err = cur.ReadVarInt(); err != nil {
					return m, err
				}
				m.Records = append(m.Records, r)
			}
			return m, nil
		},
	)

	register(catalog.BlockChange, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.BlockChange)
			if err := cur.WritePosition(m.Location); err != nil {
				return err
			}
			return cur.WriteVarInt(m.BlockID)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.BlockChange{}
			var err error
			if m.Location, err = cur.ReadPosition(); err != nil {
				return m, err
			}
			m.BlockID, err = cur.ReadVarInt()
			return m, err
		},
	)

	register(catalog.BlockAction, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.BlockAction)
			if err := cur.WritePosition(m.Location); err != nil {
				return err
			}
			if err := cur.WriteU8(m.Byte1); err != nil {
				return err
			}
			if err := cur.WriteU8(m.Byte2); err != nil {
				return err
			}
			return cur.WriteVarInt(m.BlockType)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.BlockAction{}
			var err error
			if m.Location, err = cur.ReadPosition(); err != nil {
				return m, err
			}
			if m.Byte1, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.Byte2, err = cur.ReadU8(); err != nil {
				return m, err
			}
			m.BlockType, err = cur.ReadVarInt()
			return m, err
		},
	)

	register(catalog.BlockBreakAnimation, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.BlockBreakAnimation)
			if err := cur.WriteVarInt(m.EntityID); err != nil {
				return err
			}
			if err := cur.WritePosition(m.Location); err != nil {
				return err
			}
			return cur.WriteI8(m.DestroyStage)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.BlockBreakAnimation{}
			var err error
			if m.EntityID, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.Location, err = cur.ReadPosition(); err != nil {
				return m, err
			}
			m.DestroyStage, err = cur.ReadI8()
			return m, err
		},
	)

	register(catalog.MapChunkBulk, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.MapChunkBulk)
			if err := cur.WriteBool(m.SkyLightSent); err != nil {
				return err
			}
			if err := cur.WriteVarInt(int32(len(m.Chunks))); err != nil {
				return err
			}
			for _, c := range m.Chunks {
				if err := cur.WriteI32(c.ChunkX); err != nil {
					return err
				}
				if err := cur.WriteI32(c.ChunkZ); err != nil {
					return err
				}
				if err := cur.WriteU16(c.PrimaryBitMask); err != nil {
					return err
				}
			}
			return cur.WriteByteArray(m.Data)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.MapChunkBulk{}
			var err error
			if m.SkyLightSent, err = cur.ReadBool(); err != nil {
				return m, err
			}
			count, err := cur.ReadVarInt()
			if err != nil {
				return m, err
			}
			for i := int32(0); i < count; i++ {
				var c message.ChunkMeta
				if c.ChunkX, err = cur.ReadI32(); err != nil {
					return m, err
				}
				if c.ChunkZ, err = cur.ReadI32(); err != nil {
					return m, err
				}
				if c.PrimaryBitMask, err = cur.ReadU16(); err != nil {
					return m, err
				}
				m.Chunks = append(m.Chunks, c)
			}
			m.Data, err = cur.ReadByteArray()
			return m, err
		},
	)

	register(catalog.Explosion, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.Explosion)
			for _, v := range []float32{m.X, m.Y, m.Z, m.Radius} {
				if err := cur.WriteF32(v); err != nil {
					return err
				}
			}
			if err := cur.WriteI32(int32(len(m.Records))); err != nil {
				return err
			}
			for _, r := range m.Records {
				if err := cur.WriteI8(r.DX); err != nil {
					return err
				}
				if err := cur.WriteI8(r.DY); err != nil {
					return err
				}
				if err := cur.WriteI8(r.DZ); err != nil {
					return err
				}
			}
			for _, v := range []float32{m.PlayerMotionX, m.PlayerMotionY, m.PlayerMotionZ} {
				if err := cur.WriteF32(v); err != nil {
					return err
				}
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Explosion{}
			var err error
			if m.X, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.Radius, err = cur.ReadF32(); err != nil {
				return m, err
			}
			count, err := cur.ReadI32()
			if err != nil {
				return m, err
			}
			for i := int32(0); i < count; i++ {
				var r message.ExplosionRecord
				if r.DX, err = cur.ReadI8(); err != nil {
					return m, err
				}
				if r.DY, err = cur.ReadI8(); err != nil {
					return m, err
				}
				if r.DZ, err = cur.ReadI8(); err != nil {
					return m, err
				}
				m.Records = append(m.Records, r)
			}
			if m.PlayerMotionX, err = cur.ReadF32(); err != nil {
				return m, err
			}
			if m.PlayerMotionY, err = cur.ReadF32(); err != nil {
				return m, err
			}
			m.PlayerMotionZ, err = cur.ReadF32()
			return m, err
		},
	)

	register(catalog.Effect, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.Effect)
			if err := cur.WriteI32(m.EffectID); err != nil {
				return err
			}
			if err := cur.WritePosition(m.Location); err != nil {
				return err
			}
			if err := cur.WriteI32(m.Data); err != nil {
				return err
			}
			return cur.WriteBool(m.DisableRelativeVolume)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Effect{}
			var err error
			if m.EffectID, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Location, err = cur.ReadPosition(); err != nil {
				return m, err
			}
			if m.Data, err = cur.ReadI32(); err != nil {
				return m, err
			}
			m.DisableRelativeVolume, err = cur.ReadBool()
			return m, err
		},
	)

	register(catalog.SoundEffect, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.SoundEffect)
			if err := cur.WriteString(m.SoundName); err != nil {
				return err
			}
			for _, v := range []int32{m.X, m.Y, m.Z} {
				if err := cur.WriteI32(v); err != nil {
					return err
				}
			}
			if err := cur.WriteF32(m.Volume); err != nil {
				return err
			}
			return cur.WriteU8(m.Pitch)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.SoundEffect{}
			var err error
			if m.SoundName, err = cur.ReadString(); err != nil {
				return m, err
			}
			if m.X, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Y, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Z, err = cur.ReadI32(); err != nil {
				return m, err
			}
			if m.Volume, err = cur.ReadF32(); err != nil {
				return m, err
			}
			m.Pitch, err = cur.ReadU8()
			return m, err
		},
	)

	register(catalog.ChangeGameState, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.ChangeGameState)
			if err := cur.WriteU8(m.Reason); err != nil {
				return err
			}
			return cur.WriteF32(m.Value)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ChangeGameState{}
			var err error
			if m.Reason, err = cur.ReadU8(); err != nil {
				return m, err
			}
			m.Value, err = cur.ReadF32()
			return m, err
		},
	)

	register(catalog.PlayerAbilities, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.PlayerAbilities)
			if err := cur.WriteU8(m.Flags); err != nil {
				return err
			}
			if err := cur.WriteF32(m.FlyingSpeed); err != nil {
				return err
			}
			return cur.WriteF32(m.WalkingSpeed)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.PlayerAbilities{}
			var err error
			if m.Flags, err = cur.ReadU8(); err != nil {
				return m, err
			}
			if m.FlyingSpeed, err = cur.ReadF32(); err != nil {
				return m, err
			}
			m.WalkingSpeed, err = cur.ReadF32()
			return m, err
		},
	)

	register(catalog.PluginMessage, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.PluginMessage)
			if err := cur.WriteString(m.Channel); err != nil {
				return err
			}
			return cur.WriteRaw(m.Data)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.PluginMessage{}
			var err error
			if m.Channel, err = cur.ReadString(); err != nil {
				return m, err
			}
			raw, err := cur.ReadRaw(cur.Remaining())
			if err != nil {
				return m, err
			}
			// The record outlives the cursor's pooled storage.
			m.Data = append([]byte(nil), raw...)
			return m, nil
		},
	)

	// Disconnect carries a plain string on v47 and a tag-tree reason
	// on v765.
	register(catalog.Disconnect, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.Disconnect)
			if version == format.V765 {
				return tagtree.Encode(cur, m.ReasonTag)
			}
			return cur.WriteString(m.Reason)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Disconnect{}
			var err error
			if version == format.V765 {
				m.ReasonTag, err = tagtree.Decode(cur)
				return m, err
			}
			m.Reason, err = cur.ReadString()
			return m, err
		},
	)

	register(catalog.ChangeDifficulty, format.PhasePlay, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteU8(rec.(*message.ChangeDifficulty).Difficulty)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ChangeDifficulty{}
			var err error
			m.Difficulty, err = cur.ReadU8()
			return m, err
		},
	)
}
