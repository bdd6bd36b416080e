package booking

import "github.com/m04kA/partizan-booking/pkg/dbmetrics"

// DBExecutor работает и с *dbmetrics.DB, и с транзакцией из контекста
type DBExecutor = dbmetrics.DBExecutor
