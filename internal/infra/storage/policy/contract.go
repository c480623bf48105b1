package policy

import "github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
