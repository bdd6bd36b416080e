package catalog

import "github.com/m04kA/partizan-booking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
