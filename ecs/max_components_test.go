package ecs_test

import "github.com/plus3/sparsecs/ecs"

// registerMaxComponents fills every component slot of w with byte array types.
func registerMaxComponents(w *ecs.World) {
	ecs.RegisterComponent[[1]byte](w)
	ecs.RegisterComponent[[2]byte](w)
	ecs.RegisterComponent[[3]byte](w)
	ecs.RegisterComponent[[4]byte](w)
	ecs.RegisterComponent[[5]byte](w)
	ecs.RegisterComponent[[6]byte](w)
	ecs.RegisterComponent[[7]byte](w)
	ecs.RegisterComponent[[8]byte](w)
	ecs.RegisterComponent[[9]byte](w)
	ecs.RegisterComponent[[10]byte](w)
	ecs.RegisterComponent[[11]byte](w)
	ecs.RegisterComponent[[12]byte](w)
	ecs.RegisterComponent[[13]byte](w)
	ecs.RegisterComponent[[14]byte](w)
	ecs.RegisterComponent[[15]byte](w)
	ecs.RegisterComponent[[16]byte](w)
	ecs.RegisterComponent[[17]byte](w)
	ecs.RegisterComponent[[18]byte](w)
	ecs.RegisterComponent[[19]byte](w)
	ecs.RegisterComponent[[20]byte](w)
	ecs.RegisterComponent[[21]byte](w)
	ecs.RegisterComponent[[22]byte](w)
	ecs.RegisterComponent[[23]byte](w)
	ecs.RegisterComponent[[24]byte](w)
	ecs.RegisterComponent[[25]byte](w)
	ecs.RegisterComponent[[26]byte](w)
	ecs.RegisterComponent[[27]byte](w)
	ecs.RegisterComponent[[28]byte](w)
	ecs.RegisterComponent[[29]byte](w)
	ecs.RegisterComponent[[30]byte](w)
	ecs.RegisterComponent[[31]byte](w)
	ecs.RegisterComponent[[32]byte](w)
	ecs.RegisterComponent[[33]byte](w)
	ecs.RegisterComponent[[34]byte](w)
	ecs.RegisterComponent[[35]byte](w)
	ecs.RegisterComponent[[36]byte](w)
	ecs.RegisterComponent[[37]byte](w)
	ecs.RegisterComponent[[38]byte](w)
	ecs.RegisterComponent[[39]byte](w)
	ecs.RegisterComponent[[40]byte](w)
	ecs.RegisterComponent[[41]byte](w)
	ecs.RegisterComponent[[42]byte](w)
	ecs.RegisterComponent[[43]byte](w)
	ecs.RegisterComponent[[44]byte](w)
	ecs.RegisterComponent[[45]byte](w)
	ecs.RegisterComponent[[46]byte](w)
	ecs.RegisterComponent[[47]byte](w)
	ecs.RegisterComponent[[48]byte](w)
	ecs.RegisterComponent[[49]byte](w)
	ecs.RegisterComponent[[50]byte](w)
	ecs.RegisterComponent[[51]byte](w)
	ecs.RegisterComponent[[52]byte](w)
	ecs.RegisterComponent[[53]byte](w)
	ecs.RegisterComponent[[54]byte](w)
	ecs.RegisterComponent[[55]byte](w)
	ecs.RegisterComponent[[56]byte](w)
	ecs.RegisterComponent[[57]byte](w)
	ecs.RegisterComponent[[58]byte](w)
	ecs.RegisterComponent[[59]byte](w)
	ecs.RegisterComponent[[60]byte](w)
	ecs.RegisterComponent[[61]byte](w)
	ecs.RegisterComponent[[62]byte](w)
	ecs.RegisterComponent[[63]byte](w)
	ecs.RegisterComponent[[64]byte](w)
}
