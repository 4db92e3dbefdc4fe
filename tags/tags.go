package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Spawner = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for collision objects
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
