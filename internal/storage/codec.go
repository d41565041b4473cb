package storage

import (
	"encoding/json"
	"fmt"

	"cgpbench/internal/model"
)

const (
	runSchemaVersion = 1
	runCodecVersion  = 1
)

func EncodeRunRecord(record model.RunRecord) ([]byte, error) {
	if record.SchemaVersion == 0 {
		record.SchemaVersion = runSchemaVersion
	}
	if record.CodecVersion == 0 {
		record.CodecVersion = runCodecVersion
	}
	return json.Marshal(record)
}

func DecodeRunRecord(payload []byte) (model.RunRecord, error) {
	var record model.RunRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return model.RunRecord{}, err
	}
	if record.CodecVersion > runCodecVersion {
		return model.RunRecord{}, fmt.Errorf("run record codec version %d is newer than supported %d", record.CodecVersion, runCodecVersion)
	}
	return record, nil
}
