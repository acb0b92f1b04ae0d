package comment

import (
	"github.com/m04kA/SMC-ShareIt/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
