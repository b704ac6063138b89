package stats

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"sync"

	"golang.org/x/crypto/blake2b"
)

var catalogDigest = sync.OnceValue(func() [blake2b.Size256]byte {
	return blake2b.Sum256(encodeCatalog())
})

// Fingerprint is a BLAKE2b-256 digest of the whole catalog.
// Two processes with equal fingerprints were built against identical stats.
func Fingerprint() [blake2b.Size256]byte {
	return catalogDigest()
}

// FingerprintHex returns Fingerprint as lowercase hex.
func FingerprintHex() string {
	sum := Fingerprint()
	return hex.EncodeToString(sum[:])
}

// encodeCatalog writes every record in enum order, little-endian.
// Strings are length-prefixed so adjacent fields cannot alias.
func encodeCatalog() []byte {
	buf := make([]byte, 0, 512)

	putInt := func(v int) { buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v))) }
	putFloat := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }
	putString := func(s string) {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
		buf = append(buf, s...)
	}
	putCommon := func(r *record) {
		putString(r.name)
		putString(r.displayLetter)
		putInt(r.maxHealth)
		putFloat(r.size)
		putInt(int(r.targetType))
		putFloat(r.attackRange)
		putInt(r.damage)
		putFloat(r.attackTime)
		putFloat(r.sightRadius)
	}

	for _, m := range Mobs() {
		putInt(int(KindMob))
		putInt(int(m.mobType))
		putCommon(&m.record)
		putFloat(m.elixirCost)
		putFloat(m.speed)
		putFloat(m.mass)
		putInt(int(m.damageType))

		rs, ok := m.Rogue()
		if !ok {
			buf = append(buf, 0)
			continue
		}
		buf = append(buf, 1)
		if rs.CanSpringAttack {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		putFloat(rs.SpringRange)
		putFloat(rs.SpringSpeed)
		putFloat(rs.SpringAttackDamage)
		putFloat(rs.PreferGiantRange)
		putFloat(rs.HideDistance)
	}

	for _, b := range Buildings() {
		putInt(int(KindBuilding))
		putInt(int(b.buildingType))
		putCommon(&b.record)
		putInt(int(b.DamageType()))
	}

	return buf
}
