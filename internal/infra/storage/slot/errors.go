package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с таким ключом не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotAlreadyExists возвращается при попытке создать слот с существующим ключом (queue, date, time)
	ErrSlotAlreadyExists = errors.New("slot.repository: slot already exists")

	// ErrSlotNotAvailable возвращается, когда слот отсутствует или в нём нет свободных мест
	ErrSlotNotAvailable = errors.New("slot.repository: slot not available")

	// ErrNothingToRelease возвращается, когда счётчик booked нельзя уменьшить (слот отсутствует или booked = 0)
	ErrNothingToRelease = errors.New("slot.repository: booked counter is already zero or slot is missing")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
