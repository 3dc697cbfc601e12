package main

import (
	"context"
	"flag"
	"fmt"

	"activity-discovery/app/explore/api/internal/config"
	"activity-discovery/app/explore/api/internal/handler"
	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/explore-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	response.SetupGlobalErrorHandler()

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 3. 初始化服务上下文
	svcCtx, err := svc.NewServiceContext(c)
	logx.Must(err)
	defer func() {
		if err := svcCtx.Close(); err != nil {
			logx.Errorf("关闭消息客户端失败: %v", err)
		}
	}()

	// 4. 注册事件流消费者并启动消息路由
	svcCtx.Feed.Subscribe(svcCtx.MsgClient)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := svcCtx.MsgClient.Run(ctx); err != nil {
			logx.Errorf("消息路由停止: %v", err)
		}
	}()
	<-svcCtx.MsgClient.Running()

	// 5. 注册路由处理器
	handler.RegisterHandlers(server, svcCtx)

	// 6. 启动服务
	fmt.Printf("Starting explore-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 探索服务 API 入口
// 说明：
//   explore-api 是活动发现应用的状态与筛选引擎，负责：
//   - 分类导航、搜索筛选、分类统计
//   - 发起活动、加入活动、收藏
//   - 当前用户资料编辑
//
// 启动命令：
//   go run explore.go -f etc/explore-api.yaml
