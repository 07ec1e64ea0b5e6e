package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishEntityEvent 发布实体变更事件到指定主题.
func PublishEntityEvent(pub message.Publisher, topic string, payload EntityEventPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// PublishBatchImported 发布 lv.batch.imported 事件.
func PublishBatchImported(pub message.Publisher, payload BatchImportedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicBatchImported, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBatchImported, msg)
}

// PublishAttachmentEvent 发布附件写入/删除事件.
func PublishAttachmentEvent(pub message.Publisher, topic string, payload AttachmentEventPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// ParseEntityEvent 将 Watermill 消息解析为强类型 Envelope.
func ParseEntityEvent(msg *message.Message) (Message[EntityEventPayload], error) {
	return ParseWatermillMessage[EntityEventPayload](msg)
}

// ParseBatchImported 解析批量导入事件.
func ParseBatchImported(msg *message.Message) (Message[BatchImportedPayload], error) {
	return ParseWatermillMessage[BatchImportedPayload](msg)
}
