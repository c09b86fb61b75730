package game

// CanUseWeaponOn reports whether the equipped weapon may fight monster.
// A fresh weapon fights anything; after a kill it only fights monsters
// strictly weaker than the last one it slew.
func (g *Game) CanUseWeaponOn(monster Card) bool {
	if g.weapon == nil {
		return false
	}
	if g.lastSlain == 0 {
		return true
	}
	return monster.Rank < g.lastSlain
}

// DamageWithWeapon is the damage taken fighting monster with the equipped
// weapon. It falls back to full damage when no weapon is equipped.
func (g *Game) DamageWithWeapon(monster Card) int {
	if g.weapon == nil {
		return monster.Rank
	}
	return max(0, monster.Rank-g.weapon.Rank)
}

// DamageBarehanded is the damage taken fighting monster without a weapon.
func DamageBarehanded(monster Card) int {
	return monster.Rank
}

// fight resolves the pending monster, applies the damage and returns it.
func (g *Game) fight(monster Card, useWeapon bool) int {
	var dmg int
	kind := EventFight
	if useWeapon && g.weapon != nil {
		dmg = g.DamageWithWeapon(monster)
		g.lastSlain = monster.Rank
		kind = EventFightWeapon
	} else {
		dmg = DamageBarehanded(monster)
	}
	g.health -= dmg
	g.currentMonster = nil
	g.discard = append(g.discard, monster)
	g.record(kind, &monster, dmg)
	return dmg
}
