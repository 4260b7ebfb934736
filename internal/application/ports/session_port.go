package ports

// SessionStore guarda las instancias activas de un flujo (formulario o lote)
// por usuario. El estado vive solo mientras dure la sesión del proceso.
type SessionStore[T any] interface {
	Create(owner string, v T) string
	Get(owner, id string) (T, bool)
	Delete(owner, id string) bool
}
