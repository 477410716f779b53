package convert

// Launcher scripts written next to the converted skills. They carry no
// conversion logic: given a skill name they export GEMINI_SYSTEM_MD pointing
// at the matching file, or print usage and exit non-zero.

const switchScriptSh = `#!/usr/bin/env bash
# Superpowers 技能切换脚本
# 用法: ./switch-skill.sh <skill-name>

SKILLS_DIR="$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)"
SKILL_NAME="$1"

if [ -z "$SKILL_NAME" ]; then
    echo "用法: $0 <skill-name>"
    echo ""
    echo "可用技能:"
    ls -1 "$SKILLS_DIR"/*.md | xargs -n1 basename | sed 's/.md$//' | grep -v switch-skill
    exit 1
fi

SKILL_FILE="$SKILLS_DIR/${SKILL_NAME}.md"

if [ ! -f "$SKILL_FILE" ]; then
    echo "❌ 技能不存在: $SKILL_NAME"
    echo ""
    echo "可用技能:"
    ls -1 "$SKILLS_DIR"/*.md | xargs -n1 basename | sed 's/.md$//' | grep -v switch-skill
    exit 1
fi

export GEMINI_SYSTEM_MD="$SKILL_FILE"
echo "✅ 已切换到技能: $SKILL_NAME"
echo "   系统提示词: $SKILL_FILE"
`

const switchScriptBat = `@echo off
REM Superpowers 技能切换脚本 (Windows)
REM 用法: switch-skill.bat <skill-name>

setlocal
set "SKILLS_DIR=%~dp0"
set "SKILL_NAME=%~1"

if "%SKILL_NAME%"=="" (
    echo 用法: %~nx0 ^<skill-name^>
    echo.
    echo 可用技能:
    dir /b "%SKILLS_DIR%*.md" | findstr /v "switch-skill"
    exit /b 1
)

set "SKILL_FILE=%SKILLS_DIR%%SKILL_NAME%.md"

if not exist "%SKILL_FILE%" (
    echo ❌ 技能不存在: %SKILL_NAME%
    echo.
    echo 可用技能:
    dir /b "%SKILLS_DIR%*.md" | findstr /v "switch-skill"
    exit /b 1
)

set GEMINI_SYSTEM_MD=%SKILL_FILE%
echo ✅ 已切换到技能: %SKILL_NAME%
echo    系统提示词: %SKILL_FILE%
`

const usageGuideHeader = `# Superpowers 技能集 - Gemini CLI 双语版

本目录包含 %d 个 Superpowers 技能的优化版中英双语版本。

## 翻译策略

采用**注释式双语**策略：
- 英文正文保持不变（确保技术精确性）
- 关键术语添加中文注释
- 重要段落提供中文翻译
- 代码/命令完全保持英文

## 快速开始

### 方法 1：设置环境变量

` + "```bash" + `
# Linux/macOS
export GEMINI_SYSTEM_MD=$(pwd)/test-driven-development.md
gemini "帮我实现这个功能"
` + "```" + `

### 方法 2：使用切换脚本

` + "```bash" + `
./switch-skill.sh test-driven-development
` + "```" + `

### 方法 3：交互式选择

` + "```bash" + `
skillport pick --output .
` + "```" + `

## 技能列表

`

const usageGuideFooter = `
## 与原版差异

| 特性 | Claude Code 原版 | Gemini CLI 双语版 |
|------|-----------------|------------------|
| 技能触发 | 自动检测 | 手动切换 |
| 技能间调用 | Skill 工具 | 切换系统提示词 |
| 语言 | 纯英文 | 中英双语 |
| 代码精度 | 高 | 高（代码保持英文） |
`
