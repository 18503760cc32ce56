package candidacy

// MinAge es la edad que hay que superar (estrictamente) para ser aprobado.
const MinAge = 18

// Approved decide si una candidatura se aprueba:
// - tiene que gustarle los animales
// - edad en años cumplidos > MinAge (18 no alcanza)
//
// No valida rangos: edades negativas o cero simplemente no pasan el umbral.
func Approved(likesAnimals bool, age int) bool {
	return likesAnimals && age > MinAge
}

// StatusFor traduce la regla a un estado final.
func StatusFor(likesAnimals bool, age int) Status {
	if Approved(likesAnimals, age) {
		return StatusApproved
	}
	return StatusRejected
}
