package taxengine

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec 在普通Go结构体上使用JSON编解码，替代connect默认的protojson
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string {
	return c.name
}

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// JSONCodec 客户端使用的JSON编解码器（Content-Type: application/json）
func JSONCodec() connect.Codec {
	return jsonCodec{name: "json"}
}

// jsonHandlerOptions 服务端同时覆盖 "json" 与 "json; charset=utf-8" 两个编解码器名
func jsonHandlerOptions() []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
	}
}
