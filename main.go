// @title CyberEdu 管理后台 API
// @version 1.0
// @description CyberEdu 管理后台网关，代理平台后端并补充视频元数据与成绩统计。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"fmt"
	"os"

	"cyberedu_admin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
