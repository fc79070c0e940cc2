package repository

import "time"

// Rango filtro de fechas inclusivo en ambos extremos. Un puntero nil significa
// "sin filtro": los llamadores solo construyen un Rango cuando tienen las dos
// fechas (una sola cota se ignora).
type Rango struct {
	Desde time.Time
	Hasta time.Time
}
